package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// VerificationRow carries only the fields the public endpoint may expose.
// The internal numeric ids of the certificate, student and template are
// never selected here.
type VerificationRow struct {
	CertificateID  string       `gorm:"column:certificateId"`
	CourseName     string       `gorm:"column:courseName"`
	CompletionDate sql.NullTime `gorm:"column:completionDate"`
	InstructorName string       `gorm:"column:instructorName"`
	StudentName    string       `gorm:"column:student_name"`
	StudentEmail   string       `gorm:"column:student_email"`
	TemplateName   string       `gorm:"column:template_name"`
}

type VerificationRepository interface {
	FindByCode(ctx context.Context, code string) (*VerificationRow, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) FindByCode(ctx context.Context, code string) (*VerificationRow, error) {
	var row VerificationRow
	result := r.db.WithContext(ctx).
		Table("certificates").
		Select(`certificates."certificateId", certificates."courseName", certificates."completionDate",
			certificates."instructorName",
			s.name AS student_name, s.email AS student_email,
			t.name AS template_name`).
		Joins(`JOIN students s ON certificates."studentId" = s.id`).
		Joins(`JOIN templates t ON certificates."templateId" = t.id`).
		Where(`certificates."certificateId" = ?`, code).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
