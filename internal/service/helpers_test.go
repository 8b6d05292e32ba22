package service

import (
	"testing"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/repository"
	"github.com/avictorov/studydesk/internal/testutil"
)

type testRepos struct {
	subjects repository.SubjectRepo
	routines repository.RoutineRepo
	entries  repository.EntryRepo
	slots    repository.PlanSlotRepo
	profile  repository.ProfileRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		subjects: repository.NewSQLiteSubjectRepo(database),
		routines: repository.NewSQLiteRoutineRepo(database),
		entries:  repository.NewSQLiteEntryRepo(database),
		slots:    repository.NewSQLitePlanSlotRepo(database),
		profile:  repository.NewSQLiteProfileRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}
