package handler

import (
	"net/http"
	"strconv"

	"anoa.com/certdash/internal/modules/student/dto"
	student "anoa.com/certdash/internal/modules/student/service"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/response"
	"anoa.com/certdash/pkg/validator"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	service student.StudentService
}

func NewStudentHandler(service student.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

func (h *StudentHandler) GetAllStudents(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) GetStudentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	created.Message = "Student created successfully"
	c.JSON(http.StatusCreated, created)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Student updated successfully")
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Student deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperror.BadRequest("Valid student ID is required"))
		return 0, false
	}
	return uint(id), true
}
