package repository

import (
	"context"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GradeRepository handles grade data access.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// Create inserts a new grade and fills in the generated fields.
func (r *GradeRepository) Create(ctx context.Context, g *model.Grade) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO grades (name, value, subject_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		g.Name, g.Value, g.SubjectID,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// FindByID retrieves a grade by id.
func (r *GradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Grade, error) {
	g := &model.Grade{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, value, subject_id, created_at, updated_at
		 FROM grades WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.Value, &g.SubjectID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// FindAllBySubjectID retrieves all grades under a subject, ordered by
// creation time.
func (r *GradeRepository) FindAllBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, value, subject_id, created_at, updated_at
		 FROM grades WHERE subject_id = $1 ORDER BY created_at ASC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.Name, &g.Value, &g.SubjectID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// Update persists the mutable grade fields. SubjectID is never updated.
func (r *GradeRepository) Update(ctx context.Context, g *model.Grade) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE grades SET name = $1, value = $2, updated_at = NOW() WHERE id = $3`,
		g.Name, g.Value, g.ID)
	return err
}

// Delete removes a grade.
func (r *GradeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	return err
}
