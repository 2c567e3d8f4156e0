package handler

import (
	"net/http"
	"strconv"

	"anoa.com/certdash/internal/modules/template/dto"
	template "anoa.com/certdash/internal/modules/template/service"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/response"
	"anoa.com/certdash/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	service template.TemplateService
}

func NewTemplateHandler(service template.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

func (h *TemplateHandler) GetAllTemplates(c *gin.Context) {
	templates, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) GetTemplateByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tpl, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.ID, "message": "Template created successfully"})
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Template updated successfully")
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Template deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperror.BadRequest("Valid template ID is required"))
		return 0, false
	}
	return uint(id), true
}
