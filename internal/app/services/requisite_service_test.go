package services

import (
	"context"
	"errors"
	"testing"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

func setupRequisiteService(classIDs ...int64) (*RequisiteService, *mockRequisiteRepo) {
	classes := make([]models.Class, 0, len(classIDs))
	for _, id := range classIDs {
		classes = append(classes, models.Class{ID: id})
	}
	repo := newMockRequisiteRepo()
	return NewRequisiteService(repo, newMockClassRepo(classes...)), repo
}

func TestRequisiteService_Create_Admits(t *testing.T) {
	svc, _ := setupRequisiteService(1, 2)

	requisite, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 2, "reqid": 1, "prereq": true}`))
	if err != nil {
		t.Fatalf("expected admit: %v", err)
	}
	if requisite.ClassID != 2 || requisite.ReqID != 1 || !requisite.Prereq {
		t.Errorf("unexpected row: %+v", requisite)
	}
}

func TestRequisiteService_Create_DanglingClassID(t *testing.T) {
	svc, repo := setupRequisiteService(1)

	_, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 99, "reqid": 1, "prereq": true}`))
	if !errors.Is(err, apperrors.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "classid" {
		t.Errorf("expected classid, got %q", got)
	}
	if len(repo.requisites) != 0 {
		t.Error("rejected insert must not persist")
	}
}

func TestRequisiteService_Create_DanglingReqID(t *testing.T) {
	svc, _ := setupRequisiteService(1)

	_, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 1, "reqid": 99, "prereq": true}`))
	if !errors.Is(err, apperrors.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "reqid" {
		t.Errorf("expected reqid, got %q", got)
	}
}

func TestRequisiteService_Create_ClassIDCheckedFirst(t *testing.T) {
	// Both ends dangle; the classid verdict must win.
	svc, _ := setupRequisiteService(1)

	_, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 98, "reqid": 99, "prereq": true}`))
	if !errors.Is(err, apperrors.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "classid" {
		t.Errorf("expected classid to be reported, got %q", got)
	}
}

func TestRequisiteService_Create_RejectsDuplicatePair(t *testing.T) {
	svc, repo := setupRequisiteService(1, 2)
	body := `{"classid": 2, "reqid": 1, "prereq": true}`

	if _, err := svc.CreateRequisite(context.Background(), candidate(t, body)); err != nil {
		t.Fatalf("first insert should admit: %v", err)
	}

	_, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 2, "reqid": 1, "prereq": false}`))
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("the pair is the key regardless of prereq, expected ErrDuplicateEntry, got: %v", err)
	}
	if len(repo.requisites) != 1 {
		t.Errorf("rejected insert must not persist, have %d rows", len(repo.requisites))
	}
}

func TestRequisiteService_Create_ReversedPairIsDistinct(t *testing.T) {
	svc, _ := setupRequisiteService(1, 2)

	if _, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 2, "reqid": 1, "prereq": true}`)); err != nil {
		t.Fatalf("first insert should admit: %v", err)
	}

	if _, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 1, "reqid": 2, "prereq": true}`)); err != nil {
		t.Errorf("reversed pair is a distinct key, expected admit: %v", err)
	}
}

func TestRequisiteService_Create_PrereqMustBeBool(t *testing.T) {
	svc, _ := setupRequisiteService(1, 2)

	_, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 2, "reqid": 1, "prereq": "true"}`))
	if !errors.Is(err, apperrors.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "prereq" {
		t.Errorf("expected prereq, got %q", got)
	}
}

func TestRequisiteService_Create_MissingFieldOutranksDanglingRef(t *testing.T) {
	svc, _ := setupRequisiteService(1)

	_, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 99, "reqid": 1}`))
	if !errors.Is(err, apperrors.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "prereq" {
		t.Errorf("expected prereq, got %q", got)
	}
}

func TestRequisiteService_Update_PrereqOnly(t *testing.T) {
	svc, repo := setupRequisiteService(1, 2)

	if _, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 2, "reqid": 1, "prereq": true}`)); err != nil {
		t.Fatalf("insert should admit: %v", err)
	}

	updated, err := svc.UpdateRequisite(context.Background(), 2, 1, candidate(t, `{"prereq": false}`))
	if err != nil {
		t.Fatalf("update should succeed: %v", err)
	}
	if updated.Prereq {
		t.Error("expected prereq false after update")
	}
	if repo.requisites[0].Prereq {
		t.Error("update must persist")
	}
}

func TestRequisiteService_Update_NotFound(t *testing.T) {
	svc, _ := setupRequisiteService(1, 2)

	_, err := svc.UpdateRequisite(context.Background(), 2, 1, candidate(t, `{"prereq": false}`))
	if !errors.Is(err, apperrors.ErrRequisiteNotFound) {
		t.Errorf("expected ErrRequisiteNotFound, got: %v", err)
	}
}

func TestRequisiteService_Delete_RemovesRow(t *testing.T) {
	svc, repo := setupRequisiteService(1, 2)

	if _, err := svc.CreateRequisite(context.Background(), candidate(t,
		`{"classid": 2, "reqid": 1, "prereq": true}`)); err != nil {
		t.Fatalf("insert should admit: %v", err)
	}

	if err := svc.DeleteRequisite(context.Background(), 2, 1); err != nil {
		t.Fatalf("delete should succeed: %v", err)
	}
	if len(repo.requisites) != 0 {
		t.Error("expected row removed")
	}

	if err := svc.DeleteRequisite(context.Background(), 2, 1); !errors.Is(err, apperrors.ErrRequisiteNotFound) {
		t.Errorf("expected ErrRequisiteNotFound on second delete, got: %v", err)
	}
}
