package services

import (
	"context"
	"fmt"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
	"github.com/segfault/coursecatalog/internal/pkg/dberrors"
	"github.com/segfault/coursecatalog/internal/pkg/validation"
)

// RoomRepository is the data access needed by the room service.
type RoomRepository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetByBuilding(ctx context.Context, building string) ([]models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

// RoomService handles room operations. (building, room_number) is the room's
// natural key.
type RoomService struct {
	roomRepo RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo RoomRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

// GetAllRooms retrieves all rooms
func (s *RoomService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	return rooms, nil
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

func roomKey(building, number string) validation.Key {
	return validation.KeyOf(building, number)
}

// CreateRoom validates and persists a candidate room.
func (s *RoomService) CreateRoom(ctx context.Context, candidate validation.Candidate) (*models.Room, error) {
	if err := candidate.Require("building", "room_number", "capacity"); err != nil {
		return nil, err
	}

	room := &models.Room{}
	var err error
	if room.Building, err = candidate.String("building"); err != nil {
		return nil, err
	}
	if room.Number, err = candidate.String("room_number"); err != nil {
		return nil, err
	}
	capacity, err := candidate.Int("capacity")
	if err != nil {
		return nil, err
	}
	room.Capacity = int(capacity)

	existing, err := s.roomRepo.GetByBuilding(ctx, room.Building)
	if err != nil {
		return nil, fmt.Errorf("error loading room snapshot: %w", err)
	}
	snapshot := validation.NewSnapshot()
	for i := range existing {
		snapshot.Add(roomKey(existing[i].Building, existing[i].Number))
	}
	if err := snapshot.ValidateInsert(roomKey(room.Building, room.Number)); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("room already exists in this building")
		}
		return nil, fmt.Errorf("error creating room: %w", err)
	}

	return room, nil
}

// UpdateRoom applies mutated fields onto an existing room.
func (s *RoomService) UpdateRoom(ctx context.Context, id int64, candidate validation.Candidate) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if _, ok := candidate["building"]; ok {
		if room.Building, err = candidate.String("building"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["room_number"]; ok {
		if room.Number, err = candidate.String("room_number"); err != nil {
			return nil, err
		}
	}
	if _, ok := candidate["capacity"]; ok {
		capacity, err := candidate.Int("capacity")
		if err != nil {
			return nil, err
		}
		room.Capacity = int(capacity)
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("room already exists in this building")
		}
		return nil, fmt.Errorf("error updating room: %w", err)
	}

	return room, nil
}

// DeleteRoom deletes a room by ID
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return apperrors.ErrRoomNotFound
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	return nil
}
