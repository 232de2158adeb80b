package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segfault/coursecatalog/internal/app/models"
)

// UniqueRequisiteConstraint is the composite primary key backing the
// requisite natural key.
const UniqueRequisiteConstraint = "requisite_pkey"

// RequisiteRepository handles database operations for requisites
type RequisiteRepository struct {
	db *pgxpool.Pool
}

// NewRequisiteRepository creates a new requisite repository
func NewRequisiteRepository(db *pgxpool.Pool) *RequisiteRepository {
	return &RequisiteRepository{
		db: db,
	}
}

// GetAll retrieves all requisites in (classid, reqid) order.
func (r *RequisiteRepository) GetAll(ctx context.Context) ([]models.Requisite, error) {
	query := `
		SELECT classid, reqid, prereq
		FROM requisite
		ORDER BY classid, reqid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requisites []models.Requisite
	for rows.Next() {
		var requisite models.Requisite
		if err := rows.Scan(&requisite.ClassID, &requisite.ReqID, &requisite.Prereq); err != nil {
			return nil, err
		}
		requisites = append(requisites, requisite)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requisites, nil
}

// GetByKey retrieves a requisite by composite key. Returns nil when absent.
func (r *RequisiteRepository) GetByKey(ctx context.Context, classID, reqID int64) (*models.Requisite, error) {
	query := `
		SELECT classid, reqid, prereq
		FROM requisite
		WHERE classid = $1 AND reqid = $2
	`

	var requisite models.Requisite
	err := r.db.QueryRow(ctx, query, classID, reqID).Scan(&requisite.ClassID, &requisite.ReqID, &requisite.Prereq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving requisite: %w", err)
	}

	return &requisite, nil
}

// Create inserts a new requisite row.
func (r *RequisiteRepository) Create(ctx context.Context, requisite *models.Requisite) error {
	query := `
		INSERT INTO requisite (classid, reqid, prereq)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, requisite.ClassID, requisite.ReqID, requisite.Prereq)
	return err
}

// Update updates the prereq flag of an existing requisite.
func (r *RequisiteRepository) Update(ctx context.Context, requisite *models.Requisite) error {
	query := `
		UPDATE requisite
		SET prereq = $1
		WHERE classid = $2 AND reqid = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, requisite.Prereq, requisite.ClassID, requisite.ReqID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a requisite by composite key.
func (r *RequisiteRepository) Delete(ctx context.Context, classID, reqID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM requisite WHERE classid = $1 AND reqid = $2`, classID, reqID)
	if err != nil {
		return fmt.Errorf("error deleting requisite: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
