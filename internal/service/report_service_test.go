package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/testutil"
)

func seedStudyWeek(t *testing.T, r testRepos) (calc, physics *domain.Subject) {
	t.Helper()
	ctx := context.Background()

	calc = testutil.NewTestSubject("Calculus", testutil.WithTargetTotalHours(50))
	_, err := r.subjects.Create(ctx, calc)
	require.NoError(t, err)
	physics = testutil.NewTestSubject("Physics", testutil.WithTargetTotalHours(100))
	_, err = r.subjects.Create(ctx, physics)
	require.NoError(t, err)

	entrySvc := NewEntryService(r.entries, r.uow)
	// Monday 2026-03-02 through Wednesday
	require.NoError(t, entrySvc.Log(ctx, testutil.NewTestEntry(calc.ID, testutil.Date("2026-03-02"),
		testutil.WithHours(2, 1), testutil.WithExercise(true, 30))))
	require.NoError(t, entrySvc.Log(ctx, testutil.NewTestEntry(physics.ID, testutil.Date("2026-03-02"),
		testutil.WithHours(1, 0))))
	require.NoError(t, entrySvc.Log(ctx, testutil.NewTestEntry(calc.ID, testutil.Date("2026-03-04"),
		testutil.WithHours(3, 1))))
	return calc, physics
}

func TestReportService_Daily(t *testing.T) {
	r := setupRepos(t)
	seedStudyWeek(t, r)
	ctx := context.Background()

	_, err := r.routines.Create(ctx, testutil.NewTestRoutine("running", domain.Monday))
	require.NoError(t, err)

	svc := NewReportService(r.subjects, r.routines, r.entries, r.profile)
	rep, err := svc.Daily(ctx, testutil.Date("2026-03-02"))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, rep.TotalHours, 1e-9)
	assert.Equal(t, 2, rep.SubjectsStudied)
	assert.Equal(t, 1, rep.PlannedExercises)
	assert.True(t, rep.ExerciseDone)
	// seeded profile targets 6 hours a day
	assert.InDelta(t, 6.0, rep.TargetHours, 1e-9)
	assert.InDelta(t, 4.0/6.0*100, rep.TargetPct, 1e-9)
}

func TestReportService_WeeklyNormalizesToWeekStart(t *testing.T) {
	r := setupRepos(t)
	seedStudyWeek(t, r)

	svc := NewReportService(r.subjects, r.routines, r.entries, r.profile)
	// Thursday of the same week
	an, err := svc.Weekly(context.Background(), testutil.Date("2026-03-05"))
	require.NoError(t, err)

	assert.Equal(t, testutil.Date("2026-03-02"), an.WeekStart)
	assert.InDelta(t, 8.0, an.TotalHours, 1e-9)
	assert.Equal(t, domain.Wednesday, an.MostProductiveDay)
}

func TestReportService_Range(t *testing.T) {
	r := setupRepos(t)
	seedStudyWeek(t, r)

	svc := NewReportService(r.subjects, r.routines, r.entries, r.profile)
	sum, err := svc.Range(context.Background(), testutil.Date("2026-03-01"), testutil.Date("2026-03-31"))
	require.NoError(t, err)

	assert.InDelta(t, 8.0, sum.TotalHours, 1e-9)
	require.Len(t, sum.Shares, 2)
	assert.Equal(t, "Calculus", sum.Shares[0].SubjectName)
	assert.InDelta(t, 87.5, sum.Shares[0].SharePct, 1e-9)
	assert.InDelta(t, 12.5, sum.Shares[1].SharePct, 1e-9)
}

func TestReportService_Progress(t *testing.T) {
	r := setupRepos(t)
	calc, physics := seedStudyWeek(t, r)

	svc := NewReportService(r.subjects, r.routines, r.entries, r.profile)
	all, err := svc.Progress(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[int64]float64{}
	for _, p := range all {
		byID[p.SubjectID] = p.ProgressPct
	}
	assert.InDelta(t, 7.0/50.0*100, byID[calc.ID], 1e-9)
	assert.InDelta(t, 1.0, byID[physics.ID], 1e-9)

	one, err := svc.ProgressFor(context.Background(), calc.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, one.HoursLogged, 1e-9)
}

func TestReportService_EmptyRange(t *testing.T) {
	r := setupRepos(t)

	svc := NewReportService(r.subjects, r.routines, r.entries, r.profile)
	sum, err := svc.Range(context.Background(), testutil.Date("2026-01-01"), testutil.Date("2026-01-31"))
	require.NoError(t, err)

	assert.Zero(t, sum.TotalHours)
	assert.Empty(t, sum.Shares)
}

func TestReportService_WeeklyAcceptsTimeOfDay(t *testing.T) {
	r := setupRepos(t)
	seedStudyWeek(t, r)

	svc := NewReportService(r.subjects, r.routines, r.entries, r.profile)
	at := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	an, err := svc.Weekly(context.Background(), at)
	require.NoError(t, err)

	assert.Equal(t, testutil.Date("2026-03-02"), an.WeekStart)
}
