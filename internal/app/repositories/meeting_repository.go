package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segfault/coursecatalog/internal/app/models"
)

// UniqueMeetingConstraint is the store-level index backing the meeting
// natural key.
const UniqueMeetingConstraint = "meeting_natural_key"

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{
		db: db,
	}
}

// Times are selected through to_char so clients always see the canonical
// HH:MM:SS string they inserted.
const meetingColumns = `mid, ccode, to_char(starttime, 'HH24:MI:SS'), to_char(endtime, 'HH24:MI:SS'), cdays`

func scanMeeting(row pgx.Row) (*models.Meeting, error) {
	var meeting models.Meeting
	err := row.Scan(
		&meeting.ID,
		&meeting.Code,
		&meeting.StartTime,
		&meeting.EndTime,
		&meeting.Days,
	)
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetAll retrieves all meetings in mid order.
func (r *MeetingRepository) GetAll(ctx context.Context) ([]models.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meeting
		ORDER BY mid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, *meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meetings, nil
}

// GetByID retrieves a meeting by ID. Returns nil when absent.
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meeting
		WHERE mid = $1
	`

	meeting, err := scanMeeting(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}

	return meeting, nil
}

// Create inserts a new meeting and assigns its identity. The natural-key
// unique index can still fire on a concurrent insert; callers classify that
// error with dberrors.
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	query := `
		INSERT INTO meeting (ccode, starttime, endtime, cdays)
		VALUES ($1, $2::time, $3::time, $4)
		RETURNING mid
	`

	err := r.db.QueryRow(ctx, query,
		meeting.Code, meeting.StartTime, meeting.EndTime, meeting.Days).Scan(&meeting.ID)
	if err != nil {
		return err
	}

	return nil
}

// Update updates an existing meeting.
func (r *MeetingRepository) Update(ctx context.Context, meeting *models.Meeting) error {
	query := `
		UPDATE meeting
		SET ccode = $1, starttime = $2::time, endtime = $3::time, cdays = $4
		WHERE mid = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		meeting.Code, meeting.StartTime, meeting.EndTime, meeting.Days, meeting.ID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a meeting by ID.
func (r *MeetingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM meeting WHERE mid = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting meeting: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// GetAllWithSections retrieves meeting rows joined to the sections of their
// class, in (mid, sid) scan order. Feeds the top-meetings report.
func (r *MeetingRepository) GetAllWithSections(ctx context.Context) ([]models.MeetingSection, error) {
	query := `
		SELECT m.mid, m.ccode, to_char(m.starttime, 'HH24:MI:SS'), to_char(m.endtime, 'HH24:MI:SS'), m.cdays, s.sid
		FROM meeting m
		JOIN class c ON c.ccode = m.ccode
		JOIN section s ON s.classid = c.classid
		ORDER BY m.mid, s.sid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.MeetingSection
	for rows.Next() {
		var ms models.MeetingSection
		if err := rows.Scan(
			&ms.Meeting.ID,
			&ms.Meeting.Code,
			&ms.Meeting.StartTime,
			&ms.Meeting.EndTime,
			&ms.Meeting.Days,
			&ms.SectionID,
		); err != nil {
			return nil, err
		}
		result = append(result, ms)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
