package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segfault/coursecatalog/internal/app/models"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
	}
}

const roomColumns = `rid, building, room_number, capacity`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.Building,
		&room.Number,
		&room.Capacity,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetAll retrieves all rooms in rid order.
func (r *RoomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM room
		ORDER BY rid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetByID retrieves a room by ID. Returns nil when absent.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM room
		WHERE rid = $1
	`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// GetByBuilding retrieves all rooms of one building in rid order.
func (r *RoomRepository) GetByBuilding(ctx context.Context, building string) ([]models.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM room
		WHERE building = $1
		ORDER BY rid
	`

	rows, err := r.db.Query(ctx, query, building)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetOccupancyByBuilding retrieves one building's rooms joined with their
// enrolled-student counts, in rid scan order.
func (r *RoomRepository) GetOccupancyByBuilding(ctx context.Context, building string) ([]models.RoomOccupancy, error) {
	query := `
		SELECT r.rid, r.building, r.room_number, r.capacity, COUNT(reg.uid)
		FROM room r
		LEFT JOIN section s ON s.roomid = r.rid
		LEFT JOIN registration reg ON reg.sid = s.sid
		WHERE r.building = $1
		GROUP BY r.rid, r.building, r.room_number, r.capacity
		ORDER BY r.rid
	`

	rows, err := r.db.Query(ctx, query, building)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.RoomOccupancy
	for rows.Next() {
		var ro models.RoomOccupancy
		if err := rows.Scan(
			&ro.Room.ID,
			&ro.Room.Building,
			&ro.Room.Number,
			&ro.Room.Capacity,
			&ro.Students,
		); err != nil {
			return nil, err
		}
		result = append(result, ro)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Create inserts a new room and assigns its identity.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO room (building, room_number, capacity)
		VALUES ($1, $2, $3)
		RETURNING rid
	`

	err := r.db.QueryRow(ctx, query, room.Building, room.Number, room.Capacity).Scan(&room.ID)
	if err != nil {
		return err
	}

	return nil
}

// Update updates an existing room.
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE room
		SET building = $1, room_number = $2, capacity = $3
		WHERE rid = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, room.Building, room.Number, room.Capacity, room.ID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a room by ID.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM room WHERE rid = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
