package handler

import (
	"net/http"

	"anoa.com/certdash/internal/modules/verification/dto"
	verification "anoa.com/certdash/internal/modules/verification/service"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/response"
	"anoa.com/certdash/pkg/validator"
	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	service verification.VerificationService
}

func NewVerificationHandler(service verification.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

func (h *VerificationHandler) VerifyCertificate(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	result, err := h.service.Verify(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
