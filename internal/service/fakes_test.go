package service_test

import (
	"context"
	"time"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeDB backs the in-memory store fakes. The subject/professor association
// lives in links, mirroring the join table, so deletes cascade the same way
// the schema does.
type fakeDB struct {
	users      map[uuid.UUID]*model.User
	subjects   map[uuid.UUID]*model.Subject
	professors map[uuid.UUID]*model.Professor
	grades     map[uuid.UUID]*model.Grade
	absences   map[uuid.UUID]*model.Absence

	subjectOrder   []uuid.UUID
	professorOrder []uuid.UUID
	gradeOrder     []uuid.UUID
	absenceOrder   []uuid.UUID

	// links maps subject id -> professor ids, in attach order.
	links map[uuid.UUID][]uuid.UUID
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:      map[uuid.UUID]*model.User{},
		subjects:   map[uuid.UUID]*model.Subject{},
		professors: map[uuid.UUID]*model.Professor{},
		grades:     map[uuid.UUID]*model.Grade{},
		absences:   map[uuid.UUID]*model.Absence{},
		links:      map[uuid.UUID][]uuid.UUID{},
	}
}

func (db *fakeDB) subjectProfessors(subjectID uuid.UUID) []model.Professor {
	professors := []model.Professor{}
	for _, pid := range db.links[subjectID] {
		if p, ok := db.professors[pid]; ok {
			professors = append(professors, *p)
		}
	}
	return professors
}

func (db *fakeDB) detachProfessor(professorID uuid.UUID) {
	for sid, pids := range db.links {
		kept := pids[:0]
		for _, pid := range pids {
			if pid != professorID {
				kept = append(kept, pid)
			}
		}
		db.links[sid] = kept
	}
}

// ─── UserStore ──────────────────────────────────────────────────────────────

type fakeUserStore struct{ db *fakeDB }

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	clone := *u
	f.db.users[u.ID] = &clone
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.db.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.db.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// ─── SubjectStore ───────────────────────────────────────────────────────────

type fakeSubjectStore struct{ db *fakeDB }

func (f *fakeSubjectStore) Create(_ context.Context, s *model.Subject, professorIDs []uuid.UUID) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt

	attached := []uuid.UUID{}
	for _, pid := range professorIDs {
		if _, ok := f.db.professors[pid]; ok {
			attached = append(attached, pid)
		}
	}
	f.db.links[s.ID] = attached

	clone := *s
	f.db.subjects[s.ID] = &clone
	f.db.subjectOrder = append(f.db.subjectOrder, s.ID)

	s.Professors = f.db.subjectProfessors(s.ID)
	return nil
}

func (f *fakeSubjectStore) FindByID(_ context.Context, id uuid.UUID) (*model.Subject, error) {
	s, ok := f.db.subjects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *s
	clone.Professors = f.db.subjectProfessors(id)
	return &clone, nil
}

func (f *fakeSubjectStore) FindAllByUserID(_ context.Context, userID uuid.UUID) ([]model.Subject, error) {
	var subjects []model.Subject
	for _, id := range f.db.subjectOrder {
		s, ok := f.db.subjects[id]
		if !ok || s.UserID != userID {
			continue
		}
		clone := *s
		clone.Professors = f.db.subjectProfessors(id)
		subjects = append(subjects, clone)
	}
	return subjects, nil
}

func (f *fakeSubjectStore) Update(_ context.Context, s *model.Subject) error {
	stored, ok := f.db.subjects[s.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Name = s.Name
	stored.Description = s.Description
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeSubjectStore) ReplaceProfessors(_ context.Context, subjectID uuid.UUID, professorIDs []uuid.UUID) error {
	attached := []uuid.UUID{}
	for _, pid := range professorIDs {
		if _, ok := f.db.professors[pid]; ok {
			attached = append(attached, pid)
		}
	}
	f.db.links[subjectID] = attached
	return nil
}

func (f *fakeSubjectStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.db.subjects, id)
	delete(f.db.links, id)
	for gid, g := range f.db.grades {
		if g.SubjectID == id {
			delete(f.db.grades, gid)
		}
	}
	for aid, a := range f.db.absences {
		if a.SubjectID == id {
			delete(f.db.absences, aid)
		}
	}
	return nil
}

// ─── ProfessorStore ─────────────────────────────────────────────────────────

type fakeProfessorStore struct{ db *fakeDB }

func (f *fakeProfessorStore) Create(_ context.Context, p *model.Professor) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	clone := *p
	f.db.professors[p.ID] = &clone
	f.db.professorOrder = append(f.db.professorOrder, p.ID)
	return nil
}

func (f *fakeProfessorStore) FindByID(_ context.Context, id uuid.UUID) (*model.Professor, error) {
	p, ok := f.db.professors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfessorStore) FindAllByUserID(_ context.Context, userID uuid.UUID) ([]model.Professor, error) {
	var professors []model.Professor
	for _, id := range f.db.professorOrder {
		p, ok := f.db.professors[id]
		if !ok || p.UserID != userID {
			continue
		}
		professors = append(professors, *p)
	}
	return professors, nil
}

func (f *fakeProfessorStore) FindSubjectIDs(_ context.Context, professorID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, sid := range f.db.subjectOrder {
		for _, pid := range f.db.links[sid] {
			if pid == professorID {
				ids = append(ids, sid)
			}
		}
	}
	return ids, nil
}

func (f *fakeProfessorStore) Update(_ context.Context, p *model.Professor) error {
	stored, ok := f.db.professors[p.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Name = p.Name
	stored.Email = p.Email
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeProfessorStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.db.professors, id)
	f.db.detachProfessor(id)
	return nil
}

// ─── GradeStore ─────────────────────────────────────────────────────────────

type fakeGradeStore struct{ db *fakeDB }

func (f *fakeGradeStore) Create(_ context.Context, g *model.Grade) error {
	g.ID = uuid.New()
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	clone := *g
	f.db.grades[g.ID] = &clone
	f.db.gradeOrder = append(f.db.gradeOrder, g.ID)
	return nil
}

func (f *fakeGradeStore) FindByID(_ context.Context, id uuid.UUID) (*model.Grade, error) {
	g, ok := f.db.grades[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *g
	return &clone, nil
}

func (f *fakeGradeStore) FindAllBySubjectID(_ context.Context, subjectID uuid.UUID) ([]model.Grade, error) {
	var grades []model.Grade
	for _, id := range f.db.gradeOrder {
		g, ok := f.db.grades[id]
		if !ok || g.SubjectID != subjectID {
			continue
		}
		grades = append(grades, *g)
	}
	return grades, nil
}

func (f *fakeGradeStore) Update(_ context.Context, g *model.Grade) error {
	stored, ok := f.db.grades[g.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Name = g.Name
	stored.Value = g.Value
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeGradeStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.db.grades, id)
	return nil
}

// ─── AbsenceStore ───────────────────────────────────────────────────────────

type fakeAbsenceStore struct{ db *fakeDB }

func (f *fakeAbsenceStore) Create(_ context.Context, a *model.Absence) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	clone := *a
	f.db.absences[a.ID] = &clone
	f.db.absenceOrder = append(f.db.absenceOrder, a.ID)
	return nil
}

func (f *fakeAbsenceStore) FindByID(_ context.Context, id uuid.UUID) (*model.Absence, error) {
	a, ok := f.db.absences[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *a
	return &clone, nil
}

func (f *fakeAbsenceStore) FindAllBySubjectID(_ context.Context, subjectID uuid.UUID) ([]model.Absence, error) {
	var absences []model.Absence
	for _, id := range f.db.absenceOrder {
		a, ok := f.db.absences[id]
		if !ok || a.SubjectID != subjectID {
			continue
		}
		absences = append(absences, *a)
	}
	return absences, nil
}

func (f *fakeAbsenceStore) Update(_ context.Context, a *model.Absence) error {
	stored, ok := f.db.absences[a.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Date = a.Date
	stored.Amount = a.Amount
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAbsenceStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.db.absences, id)
	return nil
}
