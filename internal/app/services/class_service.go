package services

import (
	"context"
	"fmt"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
	"github.com/segfault/coursecatalog/internal/pkg/dberrors"
	"github.com/segfault/coursecatalog/internal/pkg/validation"
)

// ClassRepository is the data access needed by the class service.
type ClassRepository interface {
	GetAll(ctx context.Context) ([]models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
}

// ClassService handles catalog class operations. The course code is the
// class's natural key.
type ClassService struct {
	classRepo ClassRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo ClassRepository) *ClassService {
	return &ClassService{
		classRepo: classRepo,
	}
}

// GetAllClasses retrieves all classes
func (s *ClassService) GetAllClasses(ctx context.Context) ([]models.Class, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// GetClassByID retrieves a class by ID
func (s *ClassService) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	if class == nil {
		return nil, apperrors.ErrClassNotFound
	}
	return class, nil
}

// parseClass runs the presence and type checks for a class candidate.
func parseClass(candidate validation.Candidate) (*models.Class, error) {
	if err := candidate.Require("cname", "ccode", "term", "years", "cred"); err != nil {
		return nil, err
	}

	class := &models.Class{}
	var err error
	if class.Name, err = candidate.String("cname"); err != nil {
		return nil, err
	}
	if class.Code, err = candidate.String("ccode"); err != nil {
		return nil, err
	}
	if class.Term, err = candidate.String("term"); err != nil {
		return nil, err
	}
	if class.Years, err = candidate.String("years"); err != nil {
		return nil, err
	}
	cred, err := candidate.Int("cred")
	if err != nil {
		return nil, err
	}
	class.Credits = int(cred)

	if _, ok := candidate["cdesc"]; ok {
		desc, err := candidate.String("cdesc")
		if err != nil {
			return nil, err
		}
		class.Description = &desc
	}
	if _, ok := candidate["csyllabus"]; ok {
		syllabus, err := candidate.String("csyllabus")
		if err != nil {
			return nil, err
		}
		class.Syllabus = &syllabus
	}

	return class, nil
}

// CreateClass validates and persists a candidate class.
func (s *ClassService) CreateClass(ctx context.Context, candidate validation.Candidate) (*models.Class, error) {
	class, err := parseClass(candidate)
	if err != nil {
		return nil, err
	}

	exists, err := s.classRepo.ExistsByCode(ctx, class.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking class code: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError("class with this course code already exists")
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("class with this course code already exists")
		}
		return nil, fmt.Errorf("error creating class: %w", err)
	}

	return class, nil
}

// UpdateClass applies mutated fields onto an existing class. Identity is
// immutable; present fields run the insert-time type checks.
func (s *ClassService) UpdateClass(ctx context.Context, id int64, candidate validation.Candidate) (*models.Class, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	if class == nil {
		return nil, apperrors.ErrClassNotFound
	}

	if _, ok := candidate["cname"]; ok {
		if class.Name, err = candidate.String("cname"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["ccode"]; ok {
		if class.Code, err = candidate.String("ccode"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["term"]; ok {
		if class.Term, err = candidate.String("term"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["years"]; ok {
		if class.Years, err = candidate.String("years"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["cred"]; ok {
		cred, err := candidate.Int("cred")
		if err != nil {
			return nil, err
		}
		class.Credits = int(cred)
	}
	if _, ok := candidate["cdesc"]; ok {
		desc, err := candidate.String("cdesc")
		if err != nil {
			return nil, err
		}
		class.Description = &desc
	}
	if _, ok := candidate["csyllabus"]; ok {
		syllabus, err := candidate.String("csyllabus")
		if err != nil {
			return nil, err
		}
		class.Syllabus = &syllabus
	}

	if err := s.classRepo.Update(ctx, class); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("class with this course code already exists")
		}
		return nil, fmt.Errorf("error updating class: %w", err)
	}

	return class, nil
}

// DeleteClass deletes a class by ID
func (s *ClassService) DeleteClass(ctx context.Context, id int64) error {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving class: %w", err)
	}
	if class == nil {
		return apperrors.ErrClassNotFound
	}

	if err := s.classRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	return nil
}
