package student

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"anoa.com/certdash/internal/entity"
	"anoa.com/certdash/internal/modules/student/dto"
	"anoa.com/certdash/pkg/apperror"
	"gorm.io/gorm"
)

type fakeStudentRepo struct {
	students  map[uint]*entity.Student
	nextID    uint
	createErr error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uint]*entity.Student), nextID: 1}
}

func (f *fakeStudentRepo) FindAll(ctx context.Context) ([]*entity.Student, error) {
	var all []*entity.Student
	for _, st := range f.students {
		all = append(all, st)
	}
	return all, nil
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = f.nextID
	student.AddedAt = time.Now()
	f.nextID++
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, id uint, name, email, courses string) (int64, error) {
	st, ok := f.students[id]
	if !ok {
		return 0, nil
	}
	st.Name = name
	st.Email = email
	st.Courses = courses
	return 1, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if _, ok := f.students[id]; !ok {
		return 0, nil
	}
	delete(f.students, id)
	return 1, nil
}

func TestCreateRequiresNameAndEmail(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	cases := []dto.CreateStudentRequest{
		{},
		{Name: "Ada Lovelace"},
		{Email: "ada@example.com"},
		{Name: "   ", Email: "ada@example.com"},
	}

	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error for %+v", req)
		}
		if !errors.Is(err, apperror.ErrBadRequest) {
			t.Fatalf("expected bad request for %+v, got %v", req, err)
		}
		if err.Error() != "Name and email are required" {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	}
}

func TestCreateShapesNewStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	created, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != "1" {
		t.Errorf("expected stringified id 1, got %q", created.ID)
	}
	if created.Courses == nil || len(created.Courses) != 0 {
		t.Errorf("expected empty courses slice, got %v", created.Courses)
	}
	if created.AddedAt == nil {
		t.Error("expected addedAt to be set")
	} else if _, err := time.Parse(time.RFC3339, *created.AddedAt); err != nil {
		t.Errorf("addedAt %q is not RFC3339: %v", *created.AddedAt, err)
	}
}

func TestCreateDuplicateEmailSurfacesDatabaseError(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.createErr = errors.New(`duplicate key value violates unique constraint "students_email_key"`)
	svc := NewStudentService(repo)

	_, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if !errors.Is(err, repo.createErr) {
		t.Fatalf("expected the driver error untouched, got %v", err)
	}
	if status := apperror.MapErrorToStatus(err); status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for constraint violation, got %d", status)
	}
}

func TestGetDecodesCoursesDefensively(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	cases := map[string]struct {
		stored string
		expect []string
	}{
		"valid array":    {`["Go","SQL"]`, []string{"Go", "SQL"}},
		"empty column":   {"", []string{}},
		"malformed json": {`{not json`, []string{}},
		"non-array json": {`{"a":1}`, []string{}},
		"json null":      {`null`, []string{}},
	}

	id := uint(0)
	for name, tc := range cases {
		id++
		repo.students[id] = &entity.Student{ID: id, Name: name, Email: name + "@example.com", Courses: tc.stored, AddedAt: time.Now()}

		got, err := svc.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(got.Courses) != len(tc.expect) {
			t.Errorf("%s: expected %v, got %v", name, tc.expect, got.Courses)
			continue
		}
		for i := range tc.expect {
			if got.Courses[i] != tc.expect[i] {
				t.Errorf("%s: expected %v, got %v", name, tc.expect, got.Courses)
			}
		}
	}
}

func TestGetMissingStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.students[7] = &entity.Student{ID: 7, Name: "Old", Email: "old@example.com", Courses: `["Old"]`}
	svc := NewStudentService(repo)

	err := svc.Update(context.Background(), 7, dto.UpdateStudentRequest{
		Name:    "New Name",
		Email:   "new@example.com",
		Courses: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := repo.students[7]
	if st.Name != "New Name" || st.Email != "new@example.com" || st.Courses != `["Go"]` {
		t.Errorf("full replace not applied: %+v", st)
	}
}

func TestUpdateMissingStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	err := svc.Update(context.Background(), 42, dto.UpdateStudentRequest{Name: "A", Email: "a@example.com"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteMissingStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
