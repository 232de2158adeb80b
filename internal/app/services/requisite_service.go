package services

import (
	"context"
	"fmt"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/app/repositories"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
	"github.com/segfault/coursecatalog/internal/pkg/dberrors"
	"github.com/segfault/coursecatalog/internal/pkg/validation"
)

// RequisiteRepository is the data access needed by the requisite service.
type RequisiteRepository interface {
	GetAll(ctx context.Context) ([]models.Requisite, error)
	GetByKey(ctx context.Context, classID, reqID int64) (*models.Requisite, error)
	Create(ctx context.Context, requisite *models.Requisite) error
	Update(ctx context.Context, requisite *models.Requisite) error
	Delete(ctx context.Context, classID, reqID int64) error
}

// ClassReader is the read-only class access used for referential checks.
type ClassReader interface {
	GetAll(ctx context.Context) ([]models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
}

// RequisiteService handles requisite operations. Inserts run the full
// pipeline: presence, types, references against the class table (classid
// before reqid), then the (classid, reqid) duplicate check.
type RequisiteService struct {
	requisiteRepo RequisiteRepository
	classRepo     ClassReader
}

// NewRequisiteService creates a new requisite service instance
func NewRequisiteService(requisiteRepo RequisiteRepository, classRepo ClassReader) *RequisiteService {
	return &RequisiteService{
		requisiteRepo: requisiteRepo,
		classRepo:     classRepo,
	}
}

// GetAllRequisites retrieves all requisites
func (s *RequisiteService) GetAllRequisites(ctx context.Context) ([]models.Requisite, error) {
	requisites, err := s.requisiteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requisites: %w", err)
	}
	return requisites, nil
}

// GetRequisiteByKey retrieves a requisite by its composite key
func (s *RequisiteService) GetRequisiteByKey(ctx context.Context, classID, reqID int64) (*models.Requisite, error) {
	requisite, err := s.requisiteRepo.GetByKey(ctx, classID, reqID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requisite: %w", err)
	}
	if requisite == nil {
		return nil, apperrors.ErrRequisiteNotFound
	}
	return requisite, nil
}

// CreateRequisite validates and persists a candidate requisite.
func (s *RequisiteService) CreateRequisite(ctx context.Context, candidate validation.Candidate) (*models.Requisite, error) {
	if err := candidate.Require("classid", "reqid", "prereq"); err != nil {
		return nil, err
	}

	classID, err := candidate.Int("classid")
	if err != nil {
		return nil, err
	}
	reqID, err := candidate.Int("reqid")
	if err != nil {
		return nil, err
	}
	prereq, err := candidate.Bool("prereq")
	if err != nil {
		return nil, err
	}

	// Both ends must resolve to existing classes. The classid side is
	// checked first and the first failure wins, which keeps the verdict
	// deterministic when both are dangling.
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading class snapshot: %w", err)
	}
	classExists, reqExists := false, false
	for i := range classes {
		if classes[i].ID == classID {
			classExists = true
		}
		if classes[i].ID == reqID {
			reqExists = true
		}
	}
	if !classExists {
		return nil, apperrors.NewReferenceNotFoundError("classid")
	}
	if !reqExists {
		return nil, apperrors.NewReferenceNotFoundError("reqid")
	}

	requisite := &models.Requisite{ClassID: classID, ReqID: reqID, Prereq: prereq}

	existing, err := s.requisiteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading requisite snapshot: %w", err)
	}
	snapshot := validation.NewSnapshot()
	for i := range existing {
		snapshot.Add(existing[i].NaturalKey())
	}
	if err := snapshot.ValidateInsert(requisite.NaturalKey()); err != nil {
		return nil, err
	}

	if err := s.requisiteRepo.Create(ctx, requisite); err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.UniqueRequisiteConstraint) {
			return nil, apperrors.NewDuplicateError("requisite pair already exists")
		}
		return nil, fmt.Errorf("error creating requisite: %w", err)
	}

	return requisite, nil
}

// UpdateRequisite updates the prereq flag of an existing requisite. Only the
// mutated field is checked; the duplicate check does not apply to updates.
func (s *RequisiteService) UpdateRequisite(ctx context.Context, classID, reqID int64, candidate validation.Candidate) (*models.Requisite, error) {
	if err := candidate.Require("prereq"); err != nil {
		return nil, err
	}
	prereq, err := candidate.Bool("prereq")
	if err != nil {
		return nil, err
	}

	existing, err := s.requisiteRepo.GetByKey(ctx, classID, reqID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requisite: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrRequisiteNotFound
	}

	existing.Prereq = prereq
	if err := s.requisiteRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("error updating requisite: %w", err)
	}

	return existing, nil
}

// DeleteRequisite deletes a requisite by composite key
func (s *RequisiteService) DeleteRequisite(ctx context.Context, classID, reqID int64) error {
	existing, err := s.requisiteRepo.GetByKey(ctx, classID, reqID)
	if err != nil {
		return fmt.Errorf("error retrieving requisite: %w", err)
	}
	if existing == nil {
		return apperrors.ErrRequisiteNotFound
	}

	if err := s.requisiteRepo.Delete(ctx, classID, reqID); err != nil {
		return fmt.Errorf("error deleting requisite: %w", err)
	}
	return nil
}
