package repository

import (
	"context"
	"fmt"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubjectRepository handles subject data access, including the
// subject_professors join table. Both sides of the association are derived
// from the join table, so the relation stays symmetric by construction.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// Create inserts a subject and attaches the given professors in one
// transaction. Professor IDs that do not exist are silently skipped.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject, professorIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO subjects (name, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Description, s.UserID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}

	if err := attachProfessors(ctx, tx, s.ID, professorIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.Professors, err = r.findProfessors(ctx, s.ID)
	return err
}

// FindByID retrieves a subject with its associated professors.
func (r *SubjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, user_id, created_at, updated_at
		 FROM subjects WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.Professors, err = r.findProfessors(ctx, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindAllByUserID retrieves all subjects owned by a user, with their
// professors, ordered by creation time.
func (r *SubjectRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, user_id, created_at, updated_at
		 FROM subjects WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Professors = []model.Professor{}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(subjects) == 0 {
		return subjects, nil
	}

	// Load all association rows for this user in one pass.
	byID := make(map[uuid.UUID]int, len(subjects))
	for i := range subjects {
		byID[subjects[i].ID] = i
	}

	profRows, err := r.pool.Query(ctx,
		`SELECT sp.subject_id, p.id, p.name, p.email, p.user_id, p.created_at, p.updated_at
		 FROM subject_professors sp
		 JOIN professors p ON p.id = sp.professor_id
		 JOIN subjects s ON s.id = sp.subject_id
		 WHERE s.user_id = $1
		 ORDER BY p.created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer profRows.Close()

	for profRows.Next() {
		var subjectID uuid.UUID
		var p model.Professor
		if err := profRows.Scan(&subjectID, &p.ID, &p.Name, &p.Email, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := byID[subjectID]; ok {
			subjects[i].Professors = append(subjects[i].Professors, p)
		}
	}
	return subjects, profRows.Err()
}

// Update persists the mutable subject fields.
func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subjects SET name = $1, description = $2, updated_at = NOW() WHERE id = $3`,
		s.Name, s.Description, s.ID)
	return err
}

// ReplaceProfessors swaps the full professor association set in one
// transaction: every current link is removed, then the new set is attached.
// Unknown professor IDs are silently skipped.
func (r *SubjectRepository) ReplaceProfessors(ctx context.Context, subjectID uuid.UUID, professorIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM subject_professors WHERE subject_id = $1`, subjectID); err != nil {
		return err
	}

	if err := attachProfessors(ctx, tx, subjectID, professorIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a subject. Association rows, grades and absences are removed
// by the schema's ON DELETE CASCADE rules, so a partial detach can never be
// observed.
func (r *SubjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	return err
}

func (r *SubjectRepository) findProfessors(ctx context.Context, subjectID uuid.UUID) ([]model.Professor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.email, p.user_id, p.created_at, p.updated_at
		 FROM subject_professors sp
		 JOIN professors p ON p.id = sp.professor_id
		 WHERE sp.subject_id = $1
		 ORDER BY p.created_at ASC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	professors := []model.Professor{}
	for rows.Next() {
		var p model.Professor
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}
	return professors, rows.Err()
}

// attachProfessors links a subject to every professor in ids that actually
// exists. The SELECT source makes the insert tolerant of unknown IDs.
func attachProfessors(ctx context.Context, tx pgx.Tx, subjectID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO subject_professors (subject_id, professor_id)
		 SELECT $1, id FROM professors WHERE id = ANY($2)
		 ON CONFLICT DO NOTHING`,
		subjectID, ids)
	return err
}
