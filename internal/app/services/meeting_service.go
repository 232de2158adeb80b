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

// MeetingRepository is the data access needed by the meeting service.
type MeetingRepository interface {
	GetAll(ctx context.Context) ([]models.Meeting, error)
	GetByID(ctx context.Context, id int64) (*models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	Update(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id int64) error
}

// MeetingService handles meeting operations, including the validated insert
// pipeline over the (ccode, starttime, endtime, cdays) natural key.
type MeetingService struct {
	meetingRepo MeetingRepository
}

// NewMeetingService creates a new meeting service instance
func NewMeetingService(meetingRepo MeetingRepository) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
	}
}

// GetAllMeetings retrieves all meetings
func (s *MeetingService) GetAllMeetings(ctx context.Context) ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meetings: %w", err)
	}
	return meetings, nil
}

// GetMeetingByID retrieves a meeting by ID
func (s *MeetingService) GetMeetingByID(ctx context.Context, id int64) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound
	}
	return meeting, nil
}

// parseMeeting runs the required-field, type and clock-format checks and
// returns the typed candidate row. Checks run in field order after the
// presence pass, so a missing field always outranks a malformed one.
func parseMeeting(candidate validation.Candidate) (*models.Meeting, error) {
	if err := candidate.Require("ccode", "starttime", "endtime", "cdays"); err != nil {
		return nil, err
	}

	code, err := candidate.String("ccode")
	if err != nil {
		return nil, err
	}
	start, err := candidate.Clock("starttime")
	if err != nil {
		return nil, err
	}
	end, err := candidate.Clock("endtime")
	if err != nil {
		return nil, err
	}
	days, err := candidate.String("cdays")
	if err != nil {
		return nil, err
	}

	return &models.Meeting{Code: code, StartTime: start, EndTime: end, Days: days}, nil
}

// CreateMeeting validates and persists a candidate meeting. The candidate is
// admitted only when no existing row shares its natural key; the snapshot
// pre-check gives the precise error and the store's unique index settles the
// concurrent race.
func (s *MeetingService) CreateMeeting(ctx context.Context, candidate validation.Candidate) (*models.Meeting, error) {
	meeting, err := parseMeeting(candidate)
	if err != nil {
		return nil, err
	}

	existing, err := s.meetingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading meeting snapshot: %w", err)
	}
	snapshot := validation.NewSnapshot()
	for i := range existing {
		snapshot.Add(existing[i].NaturalKey())
	}
	if err := snapshot.ValidateInsert(meeting.NaturalKey()); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.UniqueMeetingConstraint) {
			return nil, apperrors.NewDuplicateError("meeting with the same schedule already exists")
		}
		return nil, fmt.Errorf("error creating meeting: %w", err)
	}

	return meeting, nil
}

// UpdateMeeting applies the mutated fields of candidate onto an existing
// meeting. Present fields go through the same type and format checks as
// inserts; the duplicate check is skipped because updates are keyed by
// identity.
func (s *MeetingService) UpdateMeeting(ctx context.Context, id int64, candidate validation.Candidate) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound
	}

	if _, ok := candidate["ccode"]; ok {
		if meeting.Code, err = candidate.String("ccode"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["starttime"]; ok {
		if meeting.StartTime, err = candidate.Clock("starttime"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["endtime"]; ok {
		if meeting.EndTime, err = candidate.Clock("endtime"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["cdays"]; ok {
		if meeting.Days, err = candidate.String("cdays"); err != nil {
			return nil, err
		}
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.UniqueMeetingConstraint) {
			return nil, apperrors.NewDuplicateError("meeting with the same schedule already exists")
		}
		return nil, fmt.Errorf("error updating meeting: %w", err)
	}

	return meeting, nil
}

// DeleteMeeting deletes a meeting by ID
func (s *MeetingService) DeleteMeeting(ctx context.Context, id int64) error {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return apperrors.ErrMeetingNotFound
	}

	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting meeting: %w", err)
	}
	return nil
}
