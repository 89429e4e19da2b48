package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/google/uuid"
)

func TestSubjectOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addUser(t, "Alice", "alice@example.com")
	env.addUser(t, "Bob", "bob@example.com")
	subject := env.addSubject(t, "alice@example.com", "Calculus")

	t.Run("owner can read", func(t *testing.T) {
		got, err := env.subjectSvc.Get(ctx, subject.ID, "alice@example.com")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Calculus" {
			t.Errorf("got name %q, want Calculus", got.Name)
		}
	})

	t.Run("non-owner cannot read", func(t *testing.T) {
		if _, err := env.subjectSvc.Get(ctx, subject.ID, "bob@example.com"); !errors.Is(err, service.ErrNotOwner) {
			t.Errorf("got %v, want ErrNotOwner", err)
		}
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		req := &model.UpdateSubjectRequest{Name: strPtr("Hijacked")}
		if _, err := env.subjectSvc.Update(ctx, subject.ID, req, "bob@example.com"); !errors.Is(err, service.ErrNotOwner) {
			t.Errorf("got %v, want ErrNotOwner", err)
		}
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		if err := env.subjectSvc.Delete(ctx, subject.ID, "bob@example.com"); !errors.Is(err, service.ErrNotOwner) {
			t.Errorf("got %v, want ErrNotOwner", err)
		}
	})

	t.Run("list only returns own subjects", func(t *testing.T) {
		env.addSubject(t, "bob@example.com", "History")

		subjects, err := env.subjectSvc.List(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(subjects) != 1 || subjects[0].Name != "Calculus" {
			t.Errorf("got %d subjects, want only Calculus", len(subjects))
		}
	})
}

func TestSubjectNotFound(t *testing.T) {
	env := newTestEnv()
	env.addUser(t, "Alice", "alice@example.com")

	if _, err := env.subjectSvc.Get(context.Background(), uuid.New(), "alice@example.com"); !errors.Is(err, service.ErrSubjectNotFound) {
		t.Errorf("got %v, want ErrSubjectNotFound", err)
	}
}

func TestSubjectCreateAttachesProfessorsBothWays(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addUser(t, "Alice", "alice@example.com")
	p1 := env.addProfessor(t, "alice@example.com", "turing")
	p2 := env.addProfessor(t, "alice@example.com", "lovelace")

	subject := env.addSubject(t, "alice@example.com", "Computing", p1.ID, p2.ID)

	if len(subject.Professors) != 2 {
		t.Fatalf("got %d attached professors, want 2", len(subject.Professors))
	}

	// The professor side must observe the same association.
	for _, p := range []*model.Professor{p1, p2} {
		ids, err := env.professorSvc.SubjectIDs(ctx, p.ID, "alice@example.com")
		if err != nil {
			t.Fatalf("subject ids for %s: %v", p.Name, err)
		}
		if len(ids) != 1 || ids[0] != subject.ID {
			t.Errorf("professor %s sees subjects %v, want [%s]", p.Name, ids, subject.ID)
		}
	}
}

func TestSubjectCreateIgnoresUnknownProfessorIDs(t *testing.T) {
	env := newTestEnv()

	env.addUser(t, "Alice", "alice@example.com")
	p1 := env.addProfessor(t, "alice@example.com", "turing")

	subject := env.addSubject(t, "alice@example.com", "Computing", p1.ID, uuid.New())

	if len(subject.Professors) != 1 || subject.Professors[0].ID != p1.ID {
		t.Errorf("got %d professors, want only the known one", len(subject.Professors))
	}
}

func TestSubjectUpdatePartialFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addUser(t, "Alice", "alice@example.com")
	subject, err := env.subjectSvc.Create(ctx, &model.CreateSubjectRequest{
		Name:        "Calculus",
		Description: "Limits and derivatives",
	}, "alice@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := env.subjectSvc.Update(ctx, subject.ID, &model.UpdateSubjectRequest{
		Name: strPtr("Calculus II"),
	}, "alice@example.com")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "Calculus II" {
		t.Errorf("got name %q, want Calculus II", updated.Name)
	}
	if updated.Description != "Limits and derivatives" {
		t.Errorf("description changed to %q, want untouched", updated.Description)
	}
}

func TestSubjectUpdateProfessorsReplacesSet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addUser(t, "Alice", "alice@example.com")
	p1 := env.addProfessor(t, "alice@example.com", "turing")
	p2 := env.addProfessor(t, "alice@example.com", "lovelace")
	p3 := env.addProfessor(t, "alice@example.com", "hopper")

	subject := env.addSubject(t, "alice@example.com", "Computing", p1.ID, p2.ID)
	other := env.addSubject(t, "alice@example.com", "Networks", p3.ID)

	updated, err := env.subjectSvc.UpdateProfessors(ctx, subject.ID, &model.UpdateSubjectProfessorsRequest{
		ProfessorIDs: []uuid.UUID{p2.ID, p3.ID},
	}, "alice@example.com")
	if err != nil {
		t.Fatalf("update professors: %v", err)
	}

	got := map[uuid.UUID]bool{}
	for _, p := range updated.Professors {
		got[p.ID] = true
	}
	if len(got) != 2 || !got[p2.ID] || !got[p3.ID] {
		t.Errorf("got professors %v, want exactly {lovelace, hopper}", updated.Professors)
	}

	// p1 was detached, p2 kept, p3 attached; p3's other association survives.
	ids, err := env.professorSvc.SubjectIDs(ctx, p1.ID, "alice@example.com")
	if err != nil {
		t.Fatalf("subject ids: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("detached professor still sees subjects %v", ids)
	}

	ids, err = env.professorSvc.SubjectIDs(ctx, p3.ID, "alice@example.com")
	if err != nil {
		t.Fatalf("subject ids: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("professor hopper sees %v, want both %s and %s", ids, other.ID, subject.ID)
	}
}

func TestSubjectDeleteDetachesProfessorsAndCascades(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.addUser(t, "Alice", "alice@example.com")
	p1 := env.addProfessor(t, "alice@example.com", "turing")
	subject := env.addSubject(t, "alice@example.com", "Computing", p1.ID)

	grade, err := env.gradeSvc.Create(ctx, &model.CreateGradeRequest{
		Name:      "Midterm",
		Value:     float64Ptr(8.5),
		SubjectID: subject.ID,
	}, "alice@example.com")
	if err != nil {
		t.Fatalf("create grade: %v", err)
	}

	if err := env.subjectSvc.Delete(ctx, subject.ID, "alice@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := env.subjectSvc.Get(ctx, subject.ID, "alice@example.com"); !errors.Is(err, service.ErrSubjectNotFound) {
		t.Errorf("got %v, want ErrSubjectNotFound", err)
	}

	ids, err := env.professorSvc.SubjectIDs(ctx, p1.ID, "alice@example.com")
	if err != nil {
		t.Fatalf("subject ids: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("professor still associated with deleted subject: %v", ids)
	}

	// Grades under the subject go with it.
	if _, ok := env.db.grades[grade.ID]; ok {
		t.Error("grade survived subject deletion")
	}
}
