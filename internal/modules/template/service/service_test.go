package template

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/certdash/internal/entity"
	"anoa.com/certdash/internal/modules/template/dto"
	"anoa.com/certdash/pkg/apperror"
	"gorm.io/gorm"
)

type fakeTemplateRepo struct {
	templates map[uint]*entity.Template
	nextID    uint
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[uint]*entity.Template), nextID: 1}
}

func (f *fakeTemplateRepo) FindAll(ctx context.Context) ([]*entity.Template, error) {
	var all []*entity.Template
	for _, tpl := range f.templates {
		all = append(all, tpl)
	}
	return all, nil
}

func (f *fakeTemplateRepo) FindByID(ctx context.Context, id uint) (*entity.Template, error) {
	tpl, ok := f.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tpl, nil
}

func (f *fakeTemplateRepo) Create(ctx context.Context, template *entity.Template) error {
	template.ID = f.nextID
	template.CreatedAt = time.Now()
	f.nextID++
	f.templates[template.ID] = template
	return nil
}

func (f *fakeTemplateRepo) Update(ctx context.Context, id uint, name string, placeholders *string) (int64, error) {
	tpl, ok := f.templates[id]
	if !ok {
		return 0, nil
	}
	tpl.Name = name
	tpl.Placeholders = placeholders
	tpl.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeTemplateRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if _, ok := f.templates[id]; !ok {
		return 0, nil
	}
	delete(f.templates, id)
	return 1, nil
}

func strPtr(s string) *string {
	return &s
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo())

	_, err := svc.Create(context.Background(), dto.CreateTemplateRequest{})
	if !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if err.Error() != "Template name is required" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestCreateSerializesPlaceholders(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo)

	created, err := svc.Create(context.Background(), dto.CreateTemplateRequest{
		Name:      "Course Completion",
		Thumbnail: strPtr("data:image/png;base64,AAAA"),
		Placeholders: []dto.Placeholder{
			{Name: "Student Name", Key: "studentName", X: 50, Y: 40},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.templates[1]
	if stored.Placeholders == nil {
		t.Fatal("expected placeholders to be serialized")
	}
	if len(created.Placeholders) != 1 || created.Placeholders[0].Key != "studentName" {
		t.Fatalf("unexpected placeholders in response: %+v", created.Placeholders)
	}
}

func TestCreateWithoutPlaceholdersStoresNull(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo)

	if _, err := svc.Create(context.Background(), dto.CreateTemplateRequest{Name: "Plain"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.templates[1].Placeholders != nil {
		t.Fatal("expected nil placeholders column for absent set")
	}
}

func TestPlaceholderValidation(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo())

	cases := map[string][]dto.Placeholder{
		"missing key":    {{Name: "A", X: 10, Y: 10}},
		"duplicate key":  {{Key: "a", X: 1, Y: 1}, {Key: "a", X: 2, Y: 2}},
		"x out of range": {{Key: "a", X: 101, Y: 10}},
		"negative y":     {{Key: "a", X: 10, Y: -1}},
	}

	for name, placeholders := range cases {
		_, err := svc.Create(context.Background(), dto.CreateTemplateRequest{Name: "T", Placeholders: placeholders})
		if !errors.Is(err, apperror.ErrBadRequest) {
			t.Errorf("%s: expected bad request, got %v", name, err)
		}
	}
}

func TestGetDecodesMalformedPlaceholders(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.templates[3] = &entity.Template{ID: 3, Name: "Broken", Placeholders: strPtr(`{not json`), CreatedAt: time.Now()}
	svc := NewTemplateService(repo)

	got, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("malformed placeholders must not fail the request: %v", err)
	}
	if got.Placeholders == nil || len(got.Placeholders) != 0 {
		t.Fatalf("expected empty placeholders, got %v", got.Placeholders)
	}
}

func TestUpdateChecksExistenceFirst(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo())

	err := svc.Update(context.Background(), 7, dto.UpdateTemplateRequest{Name: "New"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Template not found" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestUpdateKeepsThumbnail(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.templates[1] = &entity.Template{ID: 1, Name: "Old", Thumbnail: strPtr("thumb"), CreatedAt: time.Now()}
	svc := NewTemplateService(repo)

	err := svc.Update(context.Background(), 1, dto.UpdateTemplateRequest{
		Name:         "New",
		Placeholders: []dto.Placeholder{{Key: "k", X: 5, Y: 5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tpl := repo.templates[1]
	if tpl.Name != "New" {
		t.Errorf("name not updated: %s", tpl.Name)
	}
	if tpl.Thumbnail == nil || *tpl.Thumbnail != "thumb" {
		t.Error("thumbnail must be immutable on update")
	}
}

func TestDeleteMissingTemplate(t *testing.T) {
	svc := NewTemplateService(newFakeTemplateRepo())

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
