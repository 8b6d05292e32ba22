package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avictorov/studydesk/internal/domain"
)

func TestBuildWeeklyAnalysisEmpty(t *testing.T) {
	an := BuildWeeklyAnalysis(day(t, "2026-03-02"), nil, nil)

	assert.Zero(t, an.TotalHours)
	assert.Zero(t, an.AvgHoursPerDay)
	assert.Zero(t, an.AvgHoursActiveDay)
	assert.Zero(t, an.ExerciseRate)
	assert.Equal(t, domain.Weekday(""), an.MostProductiveDay)
	for i, d := range an.Days {
		assert.Equal(t, domain.WeekOrder[i], d.Day)
		assert.False(t, d.HasEntries)
	}
}

func TestBuildWeeklyAnalysis(t *testing.T) {
	weekStart := day(t, "2026-03-02") // a Monday
	entries := []*domain.DailyEntry{
		{SubjectID: 1, EntryDate: day(t, "2026-03-02"), LectureHours: 2, Mood: domain.MoodGood, ExerciseDone: true},
		{SubjectID: 2, EntryDate: day(t, "2026-03-02"), QuestionHours: 1, Mood: domain.MoodGood},
		{SubjectID: 1, EntryDate: day(t, "2026-03-04"), LectureHours: 4, Mood: domain.MoodGreat},
		// outside the week, ignored
		{SubjectID: 1, EntryDate: day(t, "2026-03-10"), LectureHours: 8},
	}
	routines := []*domain.ExerciseRoutine{
		{Day: domain.Monday},
		{Day: domain.Wednesday},
	}

	an := BuildWeeklyAnalysis(weekStart, entries, routines)

	assert.InDelta(t, 7.0, an.TotalHours, 1e-9)
	assert.InDelta(t, 1.0, an.AvgHoursPerDay, 1e-9)
	assert.InDelta(t, 3.5, an.AvgHoursActiveDay, 1e-9)
	assert.Equal(t, domain.Wednesday, an.MostProductiveDay)
	assert.Equal(t, 2, an.MoodCounts[domain.MoodGood])
	assert.Equal(t, 1, an.MoodCounts[domain.MoodGreat])

	assert.Equal(t, 2, an.ExercisesPlanned)
	assert.Equal(t, 1, an.ExercisesCompleted)
	assert.InDelta(t, 50.0, an.ExerciseRate, 1e-9)

	assert.True(t, an.Days[0].HasEntries)
	assert.InDelta(t, 3.0, an.Days[0].TotalHours, 1e-9)
	assert.False(t, an.Days[1].HasEntries)
	assert.InDelta(t, 4.0, an.Days[2].TotalHours, 1e-9)
}
