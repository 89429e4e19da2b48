package repository

import (
	"context"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AbsenceRepository handles absence data access.
type AbsenceRepository struct {
	pool *pgxpool.Pool
}

// NewAbsenceRepository creates a new AbsenceRepository.
func NewAbsenceRepository(pool *pgxpool.Pool) *AbsenceRepository {
	return &AbsenceRepository{pool: pool}
}

// Create inserts a new absence and fills in the generated fields.
func (r *AbsenceRepository) Create(ctx context.Context, a *model.Absence) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO absences (date, amount, subject_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.Date, a.Amount, a.SubjectID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// FindByID retrieves an absence by id.
func (r *AbsenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Absence, error) {
	a := &model.Absence{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, date, amount, subject_id, created_at, updated_at
		 FROM absences WHERE id = $1`, id,
	).Scan(&a.ID, &a.Date, &a.Amount, &a.SubjectID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindAllBySubjectID retrieves all absences under a subject, ordered by the
// absence date.
func (r *AbsenceRepository) FindAllBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]model.Absence, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, date, amount, subject_id, created_at, updated_at
		 FROM absences WHERE subject_id = $1 ORDER BY date ASC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []model.Absence
	for rows.Next() {
		var a model.Absence
		if err := rows.Scan(&a.ID, &a.Date, &a.Amount, &a.SubjectID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// Update persists the mutable absence fields. SubjectID is never updated.
func (r *AbsenceRepository) Update(ctx context.Context, a *model.Absence) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE absences SET date = $1, amount = $2, updated_at = NOW() WHERE id = $3`,
		a.Date, a.Amount, a.ID)
	return err
}

// Delete removes an absence.
func (r *AbsenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM absences WHERE id = $1`, id)
	return err
}
