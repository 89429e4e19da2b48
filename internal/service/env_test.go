package service_test

import (
	"context"
	"testing"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// testEnv wires every service against the shared in-memory fakes. Events go
// to a nil publisher, which drops them.
type testEnv struct {
	db *fakeDB

	users      *fakeUserStore
	subjects   *fakeSubjectStore
	professors *fakeProfessorStore
	grades     *fakeGradeStore
	absences   *fakeAbsenceStore

	userSvc      *service.UserService
	subjectSvc   *service.SubjectService
	professorSvc *service.ProfessorService
	gradeSvc     *service.GradeService
	absenceSvc   *service.AbsenceService
}

func newTestEnv() *testEnv {
	db := newFakeDB()
	log := zerolog.Nop()

	users := &fakeUserStore{db: db}
	subjects := &fakeSubjectStore{db: db}
	professors := &fakeProfessorStore{db: db}
	grades := &fakeGradeStore{db: db}
	absences := &fakeAbsenceStore{db: db}

	return &testEnv{
		db:         db,
		users:      users,
		subjects:   subjects,
		professors: professors,
		grades:     grades,
		absences:   absences,

		userSvc:      service.NewUserService(users, log),
		subjectSvc:   service.NewSubjectService(subjects, users, nil, log),
		professorSvc: service.NewProfessorService(professors, users, nil, log),
		gradeSvc:     service.NewGradeService(grades, subjects, users, nil, log),
		absenceSvc:   service.NewAbsenceService(absences, subjects, users, nil, log),
	}
}

func (e *testEnv) addUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user, err := e.userSvc.Register(context.Background(), name, email, "hashed")
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func (e *testEnv) addSubject(t *testing.T, email, name string, professorIDs ...uuid.UUID) *model.Subject {
	t.Helper()
	subject, err := e.subjectSvc.Create(context.Background(), &model.CreateSubjectRequest{
		Name:         name,
		ProfessorIDs: professorIDs,
	}, email)
	if err != nil {
		t.Fatalf("create subject %s: %v", name, err)
	}
	return subject
}

func (e *testEnv) addProfessor(t *testing.T, email, name string) *model.Professor {
	t.Helper()
	professor, err := e.professorSvc.Create(context.Background(), &model.CreateProfessorRequest{
		Name:  name,
		Email: name + "@school.edu",
	}, email)
	if err != nil {
		t.Fatalf("create professor %s: %v", name, err)
	}
	return professor
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
