package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avictorov/studydesk/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, nil)

	assert.Zero(t, sum.TotalHours)
	assert.Zero(t, sum.TotalLectureHours)
	assert.Zero(t, sum.QuestionsSolved)
	assert.Zero(t, sum.DaysWithEntries)
	assert.Empty(t, sum.Shares)
}

func TestSummarizeTotalsAndShares(t *testing.T) {
	subjects := []*domain.Subject{
		{ID: 1, Name: "Calculus"},
		{ID: 2, Name: "Physics"},
	}
	entries := []*domain.DailyEntry{
		{SubjectID: 1, EntryDate: day(t, "2026-03-02"), LectureHours: 2, QuestionHours: 1, QuestionsSolved: 10},
		{SubjectID: 2, EntryDate: day(t, "2026-03-02"), LectureHours: 1, QuestionHours: 0, QuestionsSolved: 4},
		{SubjectID: 1, EntryDate: day(t, "2026-03-03"), LectureHours: 0, QuestionHours: 1},
	}

	sum := Summarize(entries, subjects)

	assert.InDelta(t, 5.0, sum.TotalHours, 1e-9)
	assert.InDelta(t, 3.0, sum.TotalLectureHours, 1e-9)
	assert.InDelta(t, 2.0, sum.TotalQuestionHours, 1e-9)
	assert.Equal(t, 14, sum.QuestionsSolved)
	assert.Equal(t, 2, sum.DaysWithEntries)

	require.Len(t, sum.Shares, 2)
	assert.Equal(t, "Calculus", sum.Shares[0].SubjectName)
	assert.InDelta(t, 80.0, sum.Shares[0].SharePct, 1e-9)
	assert.Equal(t, 2, sum.Shares[0].DaysStudied)
	assert.Equal(t, "Physics", sum.Shares[1].SubjectName)
	assert.InDelta(t, 20.0, sum.Shares[1].SharePct, 1e-9)

	total := sum.Shares[0].SharePct + sum.Shares[1].SharePct
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestSummarizeZeroHoursEntriesHaveZeroShares(t *testing.T) {
	entries := []*domain.DailyEntry{
		{SubjectID: 1, EntryDate: day(t, "2026-03-02"), QuestionsSolved: 5},
	}

	sum := Summarize(entries, []*domain.Subject{{ID: 1, Name: "Calculus"}})

	assert.Zero(t, sum.TotalHours)
	require.Len(t, sum.Shares, 1)
	assert.Zero(t, sum.Shares[0].SharePct)
	assert.Equal(t, 5, sum.QuestionsSolved)
}
