package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/pkg/helpers"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

const classColumns = `classid, cname, ccode, cdesc, term, years, cred, csyllabus`

func scanClass(row pgx.Row) (*models.Class, error) {
	var class models.Class
	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.Code,
		&class.Description,
		&class.Term,
		&class.Years,
		&class.Credits,
		&class.Syllabus,
	)
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetAll retrieves all classes in classid order.
func (r *ClassRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	query := `
		SELECT ` + classColumns + `
		FROM class
		ORDER BY classid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// GetByID retrieves a class by ID. Returns nil when the class is absent.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `
		SELECT ` + classColumns + `
		FROM class
		WHERE classid = $1
	`

	class, err := scanClass(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return class, nil
}

// ExistsByCode checks whether a class with the given course code exists.
func (r *ClassRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM class WHERE ccode = $1)`,
		code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking class existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new class and assigns its server-side identity.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO class (cname, ccode, cdesc, term, years, cred, csyllabus)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING classid
	`

	err := r.db.QueryRow(ctx, query,
		class.Name, class.Code, helpers.GetNullString(class.Description), class.Term,
		class.Years, class.Credits, helpers.GetNullString(class.Syllabus)).Scan(&class.ID)
	if err != nil {
		return err
	}

	return nil
}

// Update updates an existing class. Identity is immutable.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	query := `
		UPDATE class
		SET cname = $1, ccode = $2, cdesc = $3, term = $4, years = $5, cred = $6, csyllabus = $7
		WHERE classid = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		class.Name, class.Code, helpers.GetNullString(class.Description), class.Term,
		class.Years, class.Credits, helpers.GetNullString(class.Syllabus), class.ID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a class by ID.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM class WHERE classid = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
