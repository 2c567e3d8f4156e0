package dto

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"anoa.com/certdash/internal/entity"
)

// Required-field checks live in the service so their messages stay stable;
// binding tags only cap shape.
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Email string `json:"email" binding:"omitempty,max=255"`
}

type UpdateStudentRequest struct {
	Name    string   `json:"name" binding:"omitempty,max=255"`
	Email   string   `json:"email" binding:"omitempty,max=255"`
	Courses []string `json:"courses"`
}

type StudentResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Courses []string `json:"courses"`
	AddedAt *string  `json:"addedAt"`
	Message string   `json:"message,omitempty"`
}

// FromStudent is the single decode step from a stored row to the API
// shape. Field-level fallback policy: courses degrades to an empty list on
// null/malformed/non-array values, addedAt degrades to null; neither ever
// fails the request.
func FromStudent(st *entity.Student) StudentResponse {
	return StudentResponse{
		ID:      strconv.FormatUint(uint64(st.ID), 10),
		Name:    st.Name,
		Email:   st.Email,
		Courses: decodeCourses(st.ID, st.Courses),
		AddedAt: formatTime(st.AddedAt),
	}
}

func decodeCourses(id uint, raw string) []string {
	if raw == "" {
		return []string{}
	}
	var courses []string
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		log.Printf("failed to parse courses for student %d: %v", id, err)
		return []string{}
	}
	if courses == nil {
		return []string{}
	}
	return courses
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
