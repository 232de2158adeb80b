package services

import (
	"context"
	"fmt"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
	"github.com/segfault/coursecatalog/internal/pkg/validation"
)

// SectionRepository is the data access needed by the section service.
type SectionRepository interface {
	GetAll(ctx context.Context) ([]models.Section, error)
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id int64) error
}

// RoomReader is the read-only room access used for referential checks.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*models.Room, error)
}

// SectionService handles section operations. Inserts check that the class
// and room a section points at exist before any write.
type SectionService struct {
	sectionRepo SectionRepository
	classRepo   ClassReader
	roomRepo    RoomReader
}

// NewSectionService creates a new section service instance
func NewSectionService(sectionRepo SectionRepository, classRepo ClassReader, roomRepo RoomReader) *SectionService {
	return &SectionService{
		sectionRepo: sectionRepo,
		classRepo:   classRepo,
		roomRepo:    roomRepo,
	}
}

// GetAllSections retrieves all sections
func (s *SectionService) GetAllSections(ctx context.Context) ([]models.Section, error) {
	sections, err := s.sectionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}
	return sections, nil
}

// GetSectionByID retrieves a section by ID, with its class attached.
func (s *SectionService) GetSectionByID(ctx context.Context, id int64) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}
	if section == nil {
		return nil, apperrors.ErrSectionNotFound
	}

	class, err := s.classRepo.GetByID(ctx, section.ClassID)
	if err == nil && class != nil {
		section.Class = class
	}

	return section, nil
}

// checkSectionReferences verifies classid then roomid resolve.
func (s *SectionService) checkSectionReferences(ctx context.Context, classID, roomID int64) error {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("error checking class: %w", err)
	}
	if class == nil {
		return apperrors.NewReferenceNotFoundError("classid")
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("error checking room: %w", err)
	}
	if room == nil {
		return apperrors.NewReferenceNotFoundError("roomid")
	}

	return nil
}

// CreateSection validates and persists a candidate section.
func (s *SectionService) CreateSection(ctx context.Context, candidate validation.Candidate) (*models.Section, error) {
	if err := candidate.Require("classid", "roomid", "semester", "years", "capacity"); err != nil {
		return nil, err
	}

	classID, err := candidate.Int("classid")
	if err != nil {
		return nil, err
	}
	roomID, err := candidate.Int("roomid")
	if err != nil {
		return nil, err
	}
	semester, err := candidate.String("semester")
	if err != nil {
		return nil, err
	}
	year, err := candidate.Int("years")
	if err != nil {
		return nil, err
	}
	capacity, err := candidate.Int("capacity")
	if err != nil {
		return nil, err
	}

	if err := s.checkSectionReferences(ctx, classID, roomID); err != nil {
		return nil, err
	}

	section := &models.Section{
		ClassID:  classID,
		RoomID:   roomID,
		Semester: semester,
		Year:     int(year),
		Capacity: int(capacity),
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("error creating section: %w", err)
	}

	return section, nil
}

// UpdateSection applies mutated fields onto an existing section, re-running
// the reference checks when either foreign key changes.
func (s *SectionService) UpdateSection(ctx context.Context, id int64, candidate validation.Candidate) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}
	if section == nil {
		return nil, apperrors.ErrSectionNotFound
	}

	referencesChanged := false
	if _, ok := candidate["classid"]; ok {
		if section.ClassID, err = candidate.Int("classid"); err != nil {
			return nil, err
		}
		referencesChanged = true
	}
	if _, ok := candidate["roomid"]; ok {
		if section.RoomID, err = candidate.Int("roomid"); err != nil {
			return nil, err
		}
		referencesChanged = true
	}
	if _, ok := candidate["semester"]; ok {
		if section.Semester, err = candidate.String("semester"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["years"]; ok {
		year, err := candidate.Int("years")
		if err != nil {
			return nil, err
		}
		section.Year = int(year)
	}
	if _, ok := candidate["capacity"]; ok {
		capacity, err := candidate.Int("capacity")
		if err != nil {
			return nil, err
		}
		section.Capacity = int(capacity)
	}

	if referencesChanged {
		if err := s.checkSectionReferences(ctx, section.ClassID, section.RoomID); err != nil {
			return nil, err
		}
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, fmt.Errorf("error updating section: %w", err)
	}

	return section, nil
}

// DeleteSection deletes a section by ID
func (s *SectionService) DeleteSection(ctx context.Context, id int64) error {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving section: %w", err)
	}
	if section == nil {
		return apperrors.ErrSectionNotFound
	}

	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting section: %w", err)
	}
	return nil
}
