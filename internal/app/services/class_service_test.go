package services

import (
	"context"
	"errors"
	"testing"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

// mockClassStore is the writable class fake; mockClassRepo stays read-only
// for services that only resolve references.
type mockClassStore struct {
	classes []models.Class
	nextID  int64
}

func newMockClassStore() *mockClassStore {
	return &mockClassStore{nextID: 1}
}

func (m *mockClassStore) GetAll(_ context.Context) ([]models.Class, error) {
	return append([]models.Class(nil), m.classes...), nil
}

func (m *mockClassStore) GetByID(_ context.Context, id int64) (*models.Class, error) {
	for i := range m.classes {
		if m.classes[i].ID == id {
			row := m.classes[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (m *mockClassStore) ExistsByCode(_ context.Context, code string) (bool, error) {
	for i := range m.classes {
		if m.classes[i].Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClassStore) Create(_ context.Context, class *models.Class) error {
	class.ID = m.nextID
	m.nextID++
	m.classes = append(m.classes, *class)
	return nil
}

func (m *mockClassStore) Update(_ context.Context, class *models.Class) error {
	for i := range m.classes {
		if m.classes[i].ID == class.ID {
			m.classes[i] = *class
			return nil
		}
	}
	return nil
}

func (m *mockClassStore) Delete(_ context.Context, id int64) error {
	for i := range m.classes {
		if m.classes[i].ID == id {
			m.classes = append(m.classes[:i], m.classes[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestClassService_Create_Admits(t *testing.T) {
	svc := NewClassService(newMockClassStore())

	class, err := svc.CreateClass(context.Background(), candidate(t,
		`{"cname": "Intro to Programming", "ccode": "CIS101", "term": "Fall", "years": "2026", "cred": 3}`))
	if err != nil {
		t.Fatalf("expected admit: %v", err)
	}
	if class.ID == 0 {
		t.Error("expected server-assigned identity")
	}
	if class.Description != nil {
		t.Error("absent optional field must stay nil")
	}
}

func TestClassService_Create_OptionalFields(t *testing.T) {
	svc := NewClassService(newMockClassStore())

	class, err := svc.CreateClass(context.Background(), candidate(t,
		`{"cname": "Databases", "ccode": "CIS350", "term": "Spring", "years": "2026", "cred": 4, "cdesc": "Relational systems"}`))
	if err != nil {
		t.Fatalf("expected admit: %v", err)
	}
	if class.Description == nil || *class.Description != "Relational systems" {
		t.Error("present optional field must be kept")
	}
}

func TestClassService_Create_RejectsDuplicateCode(t *testing.T) {
	repo := newMockClassStore()
	svc := NewClassService(repo)
	body := `{"cname": "Intro to Programming", "ccode": "CIS101", "term": "Fall", "years": "2026", "cred": 3}`

	if _, err := svc.CreateClass(context.Background(), candidate(t, body)); err != nil {
		t.Fatalf("first insert should admit: %v", err)
	}

	_, err := svc.CreateClass(context.Background(), candidate(t, body))
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got: %v", err)
	}
	if len(repo.classes) != 1 {
		t.Error("rejected insert must not persist")
	}
}

func TestClassService_Create_CredMustBeInt(t *testing.T) {
	svc := NewClassService(newMockClassStore())

	_, err := svc.CreateClass(context.Background(), candidate(t,
		`{"cname": "Intro", "ccode": "CIS101", "term": "Fall", "years": "2026", "cred": "three"}`))
	if !errors.Is(err, apperrors.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "cred" {
		t.Errorf("expected cred, got %q", got)
	}
}

func TestClassService_Update_NotFound(t *testing.T) {
	svc := NewClassService(newMockClassStore())

	_, err := svc.UpdateClass(context.Background(), 42, candidate(t, `{"cname": "Renamed"}`))
	if !errors.Is(err, apperrors.ErrClassNotFound) {
		t.Errorf("expected ErrClassNotFound, got: %v", err)
	}
}
