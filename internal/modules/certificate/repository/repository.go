package repository

import (
	"context"
	"database/sql"

	"anoa.com/certdash/internal/entity"
	"gorm.io/gorm"
)

// CertificateRow is one certificate joined with its student and template.
// Date columns scan as nullable so one bad row can degrade field-by-field
// instead of aborting the whole result set.
type CertificateRow struct {
	ID              uint         `gorm:"column:id"`
	CertificateID   string       `gorm:"column:certificateId"`
	CourseName      string       `gorm:"column:courseName"`
	CompletionDate  sql.NullTime `gorm:"column:completionDate"`
	InstructorName  string       `gorm:"column:instructorName"`
	CertificateData *string      `gorm:"column:certificateData"`
	CreatedAt       sql.NullTime `gorm:"column:createdAt"`
	StudentID       uint         `gorm:"column:student_id"`
	StudentName     string       `gorm:"column:student_name"`
	StudentEmail    string       `gorm:"column:student_email"`
	TemplateID      uint         `gorm:"column:template_id"`
	TemplateName    string       `gorm:"column:template_name"`
}

const joinedColumns = `certificates.id, certificates."certificateId", certificates."courseName",
	certificates."completionDate", certificates."instructorName", certificates."certificateData",
	certificates."createdAt",
	s.id AS student_id, s.name AS student_name, s.email AS student_email,
	t.id AS template_id, t.name AS template_name`

type CertificateRepository interface {
	FindAllJoined(ctx context.Context) ([]*CertificateRow, error)
	FindJoinedByID(ctx context.Context, id uint) (*CertificateRow, error)
	Create(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("certificates").
		Select(joinedColumns).
		Joins(`JOIN students s ON certificates."studentId" = s.id`).
		Joins(`JOIN templates t ON certificates."templateId" = t.id`)
}

func (r *certificateRepository) FindAllJoined(ctx context.Context) ([]*CertificateRow, error) {
	var rows []*CertificateRow
	if err := r.joined(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *certificateRepository) FindJoinedByID(ctx context.Context, id uint) (*CertificateRow, error) {
	var row CertificateRow
	result := r.joined(ctx).Where("certificates.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *certificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *certificateRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Certificate{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
