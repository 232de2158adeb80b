package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segfault/coursecatalog/internal/app/models"
)

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

const sectionColumns = `sid, classid, roomid, semester, years, capacity`

func scanSection(row pgx.Row) (*models.Section, error) {
	var section models.Section
	err := row.Scan(
		&section.ID,
		&section.ClassID,
		&section.RoomID,
		&section.Semester,
		&section.Year,
		&section.Capacity,
	)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetAll retrieves all sections in sid order.
func (r *SectionRepository) GetAll(ctx context.Context) ([]models.Section, error) {
	query := `
		SELECT ` + sectionColumns + `
		FROM section
		ORDER BY sid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// GetByID retrieves a section by ID. Returns nil when absent.
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := `
		SELECT ` + sectionColumns + `
		FROM section
		WHERE sid = $1
	`

	section, err := scanSection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return section, nil
}

// Create inserts a new section and assigns its identity.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO section (classid, roomid, semester, years, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING sid
	`

	err := r.db.QueryRow(ctx, query,
		section.ClassID, section.RoomID, section.Semester, section.Year, section.Capacity).Scan(&section.ID)
	if err != nil {
		return err
	}

	return nil
}

// Update updates an existing section.
func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := `
		UPDATE section
		SET classid = $1, roomid = $2, semester = $3, years = $4, capacity = $5
		WHERE sid = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		section.ClassID, section.RoomID, section.Semester, section.Year, section.Capacity, section.ID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a section by ID.
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM section WHERE sid = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

const sectionClassJoin = `
	SELECT s.sid, c.classid, c.cname, c.ccode, c.cdesc, c.term, c.years, c.cred, c.csyllabus
	FROM section s
	JOIN class c ON c.classid = s.classid
`

func (r *SectionRepository) querySectionClasses(ctx context.Context, query string, args ...interface{}) ([]models.SectionClass, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.SectionClass
	for rows.Next() {
		var sc models.SectionClass
		if err := rows.Scan(
			&sc.SectionID,
			&sc.Class.ID,
			&sc.Class.Name,
			&sc.Class.Code,
			&sc.Class.Description,
			&sc.Class.Term,
			&sc.Class.Years,
			&sc.Class.Credits,
			&sc.Class.Syllabus,
		); err != nil {
			return nil, err
		}
		result = append(result, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetWithClassByRoom retrieves section-class rows scheduled into one room,
// in sid scan order.
func (r *SectionRepository) GetWithClassByRoom(ctx context.Context, roomID int64) ([]models.SectionClass, error) {
	return r.querySectionClasses(ctx, sectionClassJoin+` WHERE s.roomid = $1 ORDER BY s.sid`, roomID)
}

// GetWithClassBySemester retrieves section-class rows for one (year,
// semester) scope, in sid scan order.
func (r *SectionRepository) GetWithClassBySemester(ctx context.Context, year int, semester string) ([]models.SectionClass, error) {
	return r.querySectionClasses(ctx, sectionClassJoin+` WHERE s.years = $1 AND s.semester = $2 ORDER BY s.sid`, year, semester)
}

// GetAllWithClass retrieves all section-class rows in sid scan order.
func (r *SectionRepository) GetAllWithClass(ctx context.Context) ([]models.SectionClass, error) {
	return r.querySectionClasses(ctx, sectionClassJoin+` ORDER BY s.sid`)
}
