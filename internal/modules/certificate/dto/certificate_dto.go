package dto

import (
	"database/sql"
	"strconv"
	"time"

	"anoa.com/certdash/internal/modules/certificate/repository"
)

type IssueBatchRequest struct {
	TemplateID     uint   `json:"templateId"`
	StudentIDs     []uint `json:"studentIds"`
	CourseName     string `json:"courseName" binding:"omitempty,max=255"`
	CompletionDate string `json:"completionDate" binding:"omitempty,max=64"`
	InstructorName string `json:"instructorName" binding:"omitempty,max=255"`
}

// IssueResult reports the outcome for a single student of a batch. The
// batch responds 201 even when individual entries failed; callers must
// inspect every Success flag.
type IssueResult struct {
	StudentID     uint   `json:"studentId"`
	StudentName   string `json:"studentName,omitempty"`
	StudentEmail  string `json:"studentEmail,omitempty"`
	CertificateID string `json:"certificateId,omitempty"`
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	ID            string `json:"id,omitempty"`
}

type StudentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TemplateRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CertificateResponse struct {
	ID              string      `json:"id"`
	CertificateID   string      `json:"certificateId"`
	CourseName      string      `json:"courseName"`
	CompletionDate  *string     `json:"completionDate"`
	InstructorName  string      `json:"instructorName"`
	CertificateData *string     `json:"certificateData"`
	CreatedAt       *string     `json:"createdAt"`
	Student         StudentRef  `json:"student"`
	Template        TemplateRef `json:"template"`
}

// FromRow shapes one joined row. Each date field degrades to null
// independently; a single bad value never aborts the response.
func FromRow(row *repository.CertificateRow) CertificateResponse {
	return CertificateResponse{
		ID:              strconv.FormatUint(uint64(row.ID), 10),
		CertificateID:   row.CertificateID,
		CourseName:      row.CourseName,
		CompletionDate:  formatNullTime(row.CompletionDate),
		InstructorName:  row.InstructorName,
		CertificateData: row.CertificateData,
		CreatedAt:       formatNullTime(row.CreatedAt),
		Student: StudentRef{
			ID:    strconv.FormatUint(uint64(row.StudentID), 10),
			Name:  row.StudentName,
			Email: row.StudentEmail,
		},
		Template: TemplateRef{
			ID:   strconv.FormatUint(uint64(row.TemplateID), 10),
			Name: row.TemplateName,
		},
	}
}

func formatNullTime(t sql.NullTime) *string {
	if !t.Valid || t.Time.IsZero() {
		return nil
	}
	formatted := t.Time.UTC().Format(time.RFC3339)
	return &formatted
}
