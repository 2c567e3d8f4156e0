package repository

import (
	"context"

	"anoa.com/certdash/internal/entity"
	"gorm.io/gorm"
)

type TemplateRepository interface {
	FindAll(ctx context.Context) ([]*entity.Template, error)
	FindByID(ctx context.Context, id uint) (*entity.Template, error)
	Create(ctx context.Context, template *entity.Template) error
	Update(ctx context.Context, id uint, name string, placeholders *string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) FindAll(ctx context.Context) ([]*entity.Template, error) {
	var templates []*entity.Template
	if err := r.db.WithContext(ctx).Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) FindByID(ctx context.Context, id uint) (*entity.Template, error) {
	var template entity.Template
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) Create(ctx context.Context, template *entity.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

// Update replaces name and placeholders only; the thumbnail is immutable
// after creation. updatedAt is set by gorm on the same statement.
func (r *templateRepository) Update(ctx context.Context, id uint, name string, placeholders *string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Template{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         name,
			"placeholders": placeholders,
		})
	return result.RowsAffected, result.Error
}

func (r *templateRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Template{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
