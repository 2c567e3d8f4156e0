package repository

import (
	"context"

	"anoa.com/certdash/internal/entity"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindAll(ctx context.Context) ([]*entity.Student, error)
	FindByID(ctx context.Context, id uint) (*entity.Student, error)
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, id uint, name, email, courses string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindAll(ctx context.Context) ([]*entity.Student, error) {
	var students []*entity.Student
	if err := r.db.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	var student entity.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, id uint, name, email, courses string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Student{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":    name,
			"email":   email,
			"courses": courses,
		})
	return result.RowsAffected, result.Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Student{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
