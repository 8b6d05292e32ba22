package repository

import (
	"context"
	"testing"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(db)
	ctx := context.Background()

	r := testutil.NewTestRoutine("Running", domain.Wednesday)
	r.Intensity = domain.IntensityIntense
	r.DurationMin = 45
	r.Notes = "interval training"

	id, err := repo.Create(ctx, r)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Running", got.ExerciseType)
	assert.Equal(t, domain.Wednesday, got.Day)
	assert.Equal(t, 45, got.DurationMin)
	assert.Equal(t, domain.IntensityIntense, got.Intensity)
	assert.Equal(t, "interval training", got.Notes)
}

func TestRoutineRepo_List_WeekOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testutil.NewTestRoutine("Swimming", domain.Saturday))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewTestRoutine("Yoga", domain.Monday))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewTestRoutine("Running", domain.Thursday))
	require.NoError(t, err)

	routines, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, routines, 3)
	assert.Equal(t, domain.Monday, routines[0].Day)
	assert.Equal(t, domain.Thursday, routines[1].Day)
	assert.Equal(t, domain.Saturday, routines[2].Day)
}

func TestRoutineRepo_ListByDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testutil.NewTestRoutine("Yoga", domain.Monday))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewTestRoutine("Running", domain.Monday))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testutil.NewTestRoutine("Swimming", domain.Friday))
	require.NoError(t, err)

	routines, err := repo.ListByDay(ctx, domain.Monday)
	require.NoError(t, err)
	require.Len(t, routines, 2)
	assert.Equal(t, "Running", routines[0].ExerciseType)
	assert.Equal(t, "Yoga", routines[1].ExerciseType)
}

func TestRoutineRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRoutineRepo(db)
	ctx := context.Background()

	r := testutil.NewTestRoutine("Cycling", domain.Tuesday)
	id, err := repo.Create(ctx, r)
	require.NoError(t, err)

	r.DurationMin = 60
	r.Day = domain.Thursday
	require.NoError(t, repo.Update(ctx, r))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 60, got.DurationMin)
	assert.Equal(t, domain.Thursday, got.Day)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
}
