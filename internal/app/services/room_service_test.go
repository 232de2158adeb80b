package services

import (
	"context"
	"errors"
	"testing"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/apperrors"
)

type mockRoomRepo struct {
	rooms  []models.Room
	nextID int64
}

func newMockRoomRepo(rooms ...models.Room) *mockRoomRepo {
	return &mockRoomRepo{rooms: rooms, nextID: int64(len(rooms)) + 1}
}

func (m *mockRoomRepo) GetAll(_ context.Context) ([]models.Room, error) {
	return append([]models.Room(nil), m.rooms...), nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id int64) (*models.Room, error) {
	for i := range m.rooms {
		if m.rooms[i].ID == id {
			row := m.rooms[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (m *mockRoomRepo) GetByBuilding(_ context.Context, building string) ([]models.Room, error) {
	var result []models.Room
	for _, r := range m.rooms {
		if r.Building == building {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomRepo) Create(_ context.Context, room *models.Room) error {
	room.ID = m.nextID
	m.nextID++
	m.rooms = append(m.rooms, *room)
	return nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *models.Room) error {
	for i := range m.rooms {
		if m.rooms[i].ID == room.ID {
			m.rooms[i] = *room
			return nil
		}
	}
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id int64) error {
	for i := range m.rooms {
		if m.rooms[i].ID == id {
			m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestRoomService_Create_Admits(t *testing.T) {
	svc := NewRoomService(newMockRoomRepo())

	room, err := svc.CreateRoom(context.Background(), candidate(t,
		`{"building": "DIS", "room_number": "120", "capacity": 40}`))
	if err != nil {
		t.Fatalf("expected admit: %v", err)
	}
	if room.ID == 0 {
		t.Error("expected server-assigned identity")
	}
}

func TestRoomService_Create_RejectsDuplicateInBuilding(t *testing.T) {
	repo := newMockRoomRepo(models.Room{ID: 1, Building: "DIS", Number: "120", Capacity: 40})
	svc := NewRoomService(repo)

	_, err := svc.CreateRoom(context.Background(), candidate(t,
		`{"building": "DIS", "room_number": "120", "capacity": 60}`))
	if !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got: %v", err)
	}
	if len(repo.rooms) != 1 {
		t.Error("rejected insert must not persist")
	}
}

func TestRoomService_Create_SameNumberOtherBuildingAdmitted(t *testing.T) {
	repo := newMockRoomRepo(models.Room{ID: 1, Building: "DIS", Number: "120", Capacity: 40})
	svc := NewRoomService(repo)

	if _, err := svc.CreateRoom(context.Background(), candidate(t,
		`{"building": "ENG", "room_number": "120", "capacity": 60}`)); err != nil {
		t.Errorf("room number is only unique within a building, expected admit: %v", err)
	}
}

func TestRoomService_Create_CapacityMustBeInt(t *testing.T) {
	svc := NewRoomService(newMockRoomRepo())

	_, err := svc.CreateRoom(context.Background(), candidate(t,
		`{"building": "DIS", "room_number": "120", "capacity": "40"}`))
	if !errors.Is(err, apperrors.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got: %v", err)
	}
	if got := apperrors.FieldOf(err); got != "capacity" {
		t.Errorf("expected capacity, got %q", got)
	}
}
