package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/certdash/internal/modules/student/dto"
	"anoa.com/certdash/pkg/apperror"
	"github.com/gin-gonic/gin"
)

type stubStudentService struct {
	created *dto.StudentResponse
}

func (s *stubStudentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	return nil, nil
}

func (s *stubStudentService) Get(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	return nil, apperror.NotFound("Student not found")
}

func (s *stubStudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperror.BadRequest("Name and email are required")
	}
	return s.created, nil
}

func (s *stubStudentService) Update(ctx context.Context, id uint, req dto.UpdateStudentRequest) error {
	return nil
}

func (s *stubStudentService) Delete(ctx context.Context, id uint) error {
	return nil
}

func newStudentRouter(svc *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStudentHandler(svc)
	router.POST("/api/students", h.CreateStudent)
	router.PUT("/api/students/:id", h.UpdateStudent)
	return router
}

func TestCreateStudentIncludesCreationMessage(t *testing.T) {
	addedAt := "2026-08-01T10:00:00Z"
	router := newStudentRouter(&stubStudentService{created: &dto.StudentResponse{
		ID:      "1",
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Courses: []string{},
		AddedAt: &addedAt,
	}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(`{"name":"Ada Lovelace","email":"ada@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Student created successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["id"] != "1" {
		t.Errorf("unexpected id: %v", body["id"])
	}
	if _, ok := body["courses"].([]any); !ok {
		t.Errorf("expected courses array, got %v", body["courses"])
	}
	if body["addedAt"] != addedAt {
		t.Errorf("unexpected addedAt: %v", body["addedAt"])
	}
}

func TestCreateStudentOversizedNameIsHTTP400(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	payload := `{"name":"` + strings.Repeat("a", 300) + `","email":"ada@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Name must be at most 255 characters" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestCreateStudentMissingFieldsIsHTTP400(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(`{"name":"Ada Lovelace"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Name and email are required" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
