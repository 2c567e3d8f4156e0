package template

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"anoa.com/certdash/internal/entity"
	"anoa.com/certdash/internal/modules/template/dto"
	"anoa.com/certdash/internal/modules/template/repository"
	"anoa.com/certdash/pkg/apperror"
	"anoa.com/certdash/pkg/sanitize"
	"gorm.io/gorm"
)

type TemplateService interface {
	List(ctx context.Context) ([]dto.TemplateListItem, error)
	Get(ctx context.Context, id uint) (*dto.TemplateResponse, error)
	Create(ctx context.Context, req dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateTemplateRequest) error
	Delete(ctx context.Context, id uint) error
}

type templateService struct {
	repo repository.TemplateRepository
}

func NewTemplateService(repo repository.TemplateRepository) TemplateService {
	return &templateService{repo: repo}
}

func (s *templateService) List(ctx context.Context) ([]dto.TemplateListItem, error) {
	templates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TemplateListItem, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, dto.ListItemFromTemplate(tpl))
	}
	return items, nil
}

func (s *templateService) Get(ctx context.Context, id uint) (*dto.TemplateResponse, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Template not found")
		}
		return nil, err
	}

	res := dto.FromTemplate(template)
	return &res, nil
}

func (s *templateService) Create(ctx context.Context, req dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	name := sanitize.Text(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Template name is required")
	}

	encoded, err := encodePlaceholders(req.Placeholders)
	if err != nil {
		return nil, err
	}

	template := &entity.Template{
		Name:         name,
		Thumbnail:    req.Thumbnail,
		Placeholders: encoded,
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}

	res := dto.FromTemplate(template)
	return &res, nil
}

func (s *templateService) Update(ctx context.Context, id uint, req dto.UpdateTemplateRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Template not found")
		}
		return err
	}

	name := sanitize.Text(req.Name)
	if name == "" {
		return apperror.BadRequest("Template name is required")
	}

	encoded, err := encodePlaceholders(req.Placeholders)
	if err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, id, name, encoded); err != nil {
		return err
	}
	return nil
}

func (s *templateService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("Template not found")
	}
	return nil
}

// encodePlaceholders validates the placeholder set and serializes it, or
// returns nil for an absent set. Keys must be unique within a template and
// positions are percentages in [0,100]; the store does not enforce either.
func encodePlaceholders(placeholders []dto.Placeholder) (*string, error) {
	if placeholders == nil {
		return nil, nil
	}

	seen := make(map[string]bool, len(placeholders))
	for _, p := range placeholders {
		if p.Key == "" {
			return nil, apperror.BadRequest("Placeholder key is required")
		}
		if seen[p.Key] {
			return nil, apperror.BadRequest(fmt.Sprintf("Duplicate placeholder key: %s", p.Key))
		}
		seen[p.Key] = true
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			return nil, apperror.BadRequest(fmt.Sprintf("Placeholder %s position must be within 0-100", p.Key))
		}
	}

	encoded, err := json.Marshal(placeholders)
	if err != nil {
		return nil, apperror.BadRequest("Invalid placeholders")
	}
	result := string(encoded)
	return &result, nil
}
