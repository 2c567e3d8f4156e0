package student

import (
	"context"
	"encoding/json"
	"errors"

	"anoa.com/certdash/internal/entity"
	"anoa.com/certdash/internal/modules/student/dto"
	"anoa.com/certdash/internal/modules/student/repository"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/sanitize"
	"gorm.io/gorm"
)

type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id uint) (*dto.StudentResponse, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateStudentRequest) error
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, dto.FromStudent(st))
	}
	return responses, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Student not found")
		}
		return nil, err
	}

	res := dto.FromStudent(student)
	return &res, nil
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	name := sanitize.Text(req.Name)
	email := sanitize.Text(req.Email)
	if name == "" || email == "" {
		return nil, apperror.BadRequest("Name and email are required")
	}

	// New students start with no courses. No duplicate-email pre-check:
	// the unique index is the authority and a violation surfaces as a
	// store error.
	student := &entity.Student{
		Name:    name,
		Email:   email,
		Courses: "[]",
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	res := dto.FromStudent(student)
	return &res, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req dto.UpdateStudentRequest) error {
	name := sanitize.Text(req.Name)
	email := sanitize.Text(req.Email)
	if name == "" || email == "" {
		return apperror.BadRequest("Name and email are required")
	}

	courses := req.Courses
	if courses == nil {
		courses = []string{}
	}
	encoded, err := json.Marshal(courses)
	if err != nil {
		return apperror.BadRequest("Invalid courses list")
	}

	affected, err := s.repo.Update(ctx, id, name, email, string(encoded))
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Student not found")
	}
	return nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Student not found")
	}
	return nil
}
