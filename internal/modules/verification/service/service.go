package verification

import (
	"context"
	"errors"
	"strings"

	"anoa.com/certdash/internal/modules/verification/dto"
	"anoa.com/certdash/internal/modules/verification/repository"
	"anoa.com/certdash/pkg/apperror"
	"gorm.io/gorm"
)

type VerificationService interface {
	Verify(ctx context.Context, req dto.VerifyRequest) (*dto.VerifyResponse, error)
}

type verificationService struct {
	repo repository.VerificationRepository
}

func NewVerificationService(repo repository.VerificationRepository) VerificationService {
	return &verificationService{repo: repo}
}

// Verify looks a certificate up by its public code. An unknown code is a
// valid verification outcome, not an error: it answers isValid=false with
// HTTP 200.
func (s *verificationService) Verify(ctx context.Context, req dto.VerifyRequest) (*dto.VerifyResponse, error) {
	code := strings.TrimSpace(req.CertificateID)
	if code == "" {
		return nil, apperror.BadRequest("Certificate ID is required")
	}

	row, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.VerifyResponse{
				IsValid: false,
				Message: "Certificate not found",
			}, nil
		}
		return nil, err
	}

	res := &dto.VerifyResponse{
		IsValid:        true,
		CertificateID:  row.CertificateID,
		StudentName:    row.StudentName,
		StudentEmail:   row.StudentEmail,
		CourseName:     row.CourseName,
		InstructorName: row.InstructorName,
		TemplateName:   row.TemplateName,
	}
	if row.CompletionDate.Valid {
		formatted := row.CompletionDate.Time.UTC().Format("2006-01-02")
		res.CompletionDate = &formatted
		res.IssueDate = &formatted
	}
	return res, nil
}
