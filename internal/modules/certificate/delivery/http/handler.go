package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"anoa.com/certdash/internal/modules/certificate/dto"
	certificate "anoa.com/certdash/internal/modules/certificate/service"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/response"
	"anoa.com/certdash/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	service certificate.CertificateService
}

func NewCertificateHandler(service certificate.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

func (h *CertificateHandler) GetAllCertificates(c *gin.Context) {
	certificates, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, certificates)
}

func (h *CertificateHandler) GetCertificateByID(c *gin.Context) {
	id, ok := resolveID(c)
	if !ok {
		return
	}

	cert, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cert)
}

func (h *CertificateHandler) IssueCertificates(c *gin.Context) {
	var req dto.IssueBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	results, err := h.service.IssueBatch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Certificates generated successfully",
		"results": results,
	})
}

func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	id, ok := resolveID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Certificate deleted successfully")
}

// resolveID accepts the certificate's internal id from an optional JSON
// body, falling back to the path parameter. Body wins when both are
// present; existing dashboard clients send either.
func resolveID(c *gin.Context) (uint, bool) {
	var body struct {
		ID json.Number `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err == nil && body.ID != "" {
		if id, err := strconv.ParseUint(body.ID.String(), 10, 32); err == nil {
			return uint(id), true
		}
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperror.BadRequest("Valid certificate ID is required"))
		return 0, false
	}
	return uint(id), true
}
