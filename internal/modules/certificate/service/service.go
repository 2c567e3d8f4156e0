package certificate

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"anoa.com/certdash/internal/entity"
	"anoa.com/certdash/internal/modules/certificate/dto"
	"anoa.com/certdash/internal/modules/certificate/repository"
	studentRepo "anoa.com/certdash/internal/modules/student/repository"
	templateRepo "anoa.com/certdash/internal/modules/template/repository"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/certcode"
	"anoa.com/certdash/pkg/sanitize"
	"gorm.io/gorm"
)

type CertificateService interface {
	List(ctx context.Context) ([]dto.CertificateResponse, error)
	Get(ctx context.Context, id uint) (*dto.CertificateResponse, error)
	Delete(ctx context.Context, id uint) error
	IssueBatch(ctx context.Context, req dto.IssueBatchRequest) ([]dto.IssueResult, error)
}

type certificateService struct {
	repo         repository.CertificateRepository
	studentRepo  studentRepo.StudentRepository
	templateRepo templateRepo.TemplateRepository
}

func NewCertificateService(
	repo repository.CertificateRepository,
	studentRepo studentRepo.StudentRepository,
	templateRepo templateRepo.TemplateRepository,
) CertificateService {
	return &certificateService{
		repo:         repo,
		studentRepo:  studentRepo,
		templateRepo: templateRepo,
	}
}

func (s *certificateService) List(ctx context.Context) ([]dto.CertificateResponse, error) {
	rows, err := s.repo.FindAllJoined(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CertificateResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.FromRow(row))
	}
	return responses, nil
}

func (s *certificateService) Get(ctx context.Context, id uint) (*dto.CertificateResponse, error) {
	row, err := s.repo.FindJoinedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Certificate not found")
		}
		return nil, err
	}

	res := dto.FromRow(row)
	return &res, nil
}

func (s *certificateService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Certificate not found")
	}
	return nil
}

// IssueBatch creates one certificate per requested student. The batch is
// deliberately not transactional: each student is validated and inserted
// independently, a missing student is reported in its result entry without
// touching its siblings, and inserts that already committed stay committed
// even if a later one fails.
func (s *certificateService) IssueBatch(ctx context.Context, req dto.IssueBatchRequest) ([]dto.IssueResult, error) {
	courseName := sanitize.Text(req.CourseName)
	instructorName := sanitize.Text(req.InstructorName)
	if req.TemplateID == 0 || len(req.StudentIDs) == 0 || courseName == "" || req.CompletionDate == "" || instructorName == "" {
		return nil, apperror.BadRequest("Missing required fields: templateId, studentIds (array), courseName, completionDate, instructorName")
	}

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		return nil, apperror.BadRequest("Invalid completion date")
	}

	template, err := s.templateRepo.FindByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Template not found")
		}
		return nil, err
	}

	results := make([]dto.IssueResult, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		student, err := s.studentRepo.FindByID(ctx, studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				results = append(results, dto.IssueResult{
					StudentID: studentID,
					Success:   false,
					Message:   "Student not found",
				})
				continue
			}
			return nil, err
		}

		code := certcode.New()

		// Rendering is a placeholder: the stored artifact is the template
		// thumbnail copied verbatim, no text composition happens.
		cert := &entity.Certificate{
			CertificateID:   code,
			TemplateID:      template.ID,
			StudentID:       student.ID,
			CourseName:      courseName,
			CompletionDate:  completionDate,
			InstructorName:  instructorName,
			CertificateData: template.Thumbnail,
		}
		if err := s.repo.Create(ctx, cert); err != nil {
			return nil, err
		}

		log.Printf("issued certificate %s for student %d", code, student.ID)

		results = append(results, dto.IssueResult{
			StudentID:     student.ID,
			StudentName:   student.Name,
			StudentEmail:  student.Email,
			CertificateID: code,
			Success:       true,
			ID:            strconv.FormatUint(uint64(cert.ID), 10),
		})
	}

	return results, nil
}

func parseCompletionDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
