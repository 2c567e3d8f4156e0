package handler

import (
	"net/http"

	"anoa.com/certdash/internal/modules/profile/dto"
	profile "anoa.com/certdash/internal/modules/profile/service"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/response"
	"anoa.com/certdash/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service profile.ProfileService
}

func NewProfileHandler(service profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get(c.Request.Context()))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	h.service.Update(c.Request.Context(), req)

	response.Message(c, http.StatusOK, "Profile updated successfully")
}
