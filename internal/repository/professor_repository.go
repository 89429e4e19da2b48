package repository

import (
	"context"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfessorRepository handles professor data access.
type ProfessorRepository struct {
	pool *pgxpool.Pool
}

// NewProfessorRepository creates a new ProfessorRepository.
func NewProfessorRepository(pool *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{pool: pool}
}

// Create inserts a new professor and fills in the generated fields.
func (r *ProfessorRepository) Create(ctx context.Context, p *model.Professor) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO professors (name, email, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Email, p.UserID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// FindByID retrieves a professor by id.
func (r *ProfessorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Professor, error) {
	p := &model.Professor{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, user_id, created_at, updated_at
		 FROM professors WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindAllByUserID retrieves all professors owned by a user, ordered by
// creation time.
func (r *ProfessorRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]model.Professor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, user_id, created_at, updated_at
		 FROM professors WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professors []model.Professor
	for rows.Next() {
		var p model.Professor
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}
	return professors, rows.Err()
}

// FindSubjectIDs returns the IDs of every subject associated with a
// professor. This is the reverse side of the subject_professors join table.
func (r *ProfessorRepository) FindSubjectIDs(ctx context.Context, professorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT subject_id FROM subject_professors WHERE professor_id = $1`, professorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update persists the mutable professor fields.
func (r *ProfessorRepository) Update(ctx context.Context, p *model.Professor) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE professors SET name = $1, email = $2, updated_at = NOW() WHERE id = $3`,
		p.Name, p.Email, p.ID)
	return err
}

// Delete removes a professor. Association rows are removed by the schema's
// ON DELETE CASCADE rule, so no subject is left pointing at a deleted
// professor.
func (r *ProfessorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM professors WHERE id = $1`, id)
	return err
}
