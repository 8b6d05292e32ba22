package report

import (
	"time"

	"github.com/avictorov/studydesk/internal/domain"
)

// DayTotal holds one weekday's logged hours within the analyzed week.
type DayTotal struct {
	Day        domain.Weekday
	Date       time.Time
	TotalHours float64
	HasEntries bool
}

// WeeklyAnalysis covers the seven days starting at WeekStart.
type WeeklyAnalysis struct {
	WeekStart          time.Time
	Days               [7]DayTotal
	TotalHours         float64
	AvgHoursPerDay     float64
	AvgHoursActiveDay  float64
	MostProductiveDay  domain.Weekday
	MoodCounts         map[domain.Mood]int
	ExercisesPlanned   int
	ExercisesCompleted int
	ExerciseRate       float64
}

// BuildWeeklyAnalysis aggregates a Monday-first week. AvgHoursPerDay
// divides by 7; AvgHoursActiveDay divides by days that have at least one
// entry and is 0 for an empty week. A routine instance counts as
// completed when any entry on its date has exercise marked done;
// ExerciseRate is 0 when nothing was planned. MostProductiveDay is the
// zero Weekday when no hours were logged.
func BuildWeeklyAnalysis(weekStart time.Time, entries []*domain.DailyEntry, routines []*domain.ExerciseRoutine) WeeklyAnalysis {
	an := WeeklyAnalysis{
		WeekStart:  weekStart,
		MoodCounts: make(map[domain.Mood]int),
	}
	for i, day := range domain.WeekOrder {
		an.Days[i] = DayTotal{Day: day, Date: weekStart.AddDate(0, 0, i)}
	}

	exercisedDays := make(map[int]bool)
	for _, e := range entries {
		idx := int(e.EntryDate.Sub(weekStart).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		an.Days[idx].TotalHours += e.TotalHours()
		an.Days[idx].HasEntries = true
		an.TotalHours += e.TotalHours()
		an.MoodCounts[e.Mood]++
		if e.ExerciseDone {
			exercisedDays[idx] = true
		}
	}

	active := 0
	best := -1.0
	for i := range an.Days {
		if an.Days[i].HasEntries {
			active++
		}
		if an.Days[i].TotalHours > best && an.Days[i].TotalHours > 0 {
			best = an.Days[i].TotalHours
			an.MostProductiveDay = an.Days[i].Day
		}
	}
	an.AvgHoursPerDay = an.TotalHours / 7
	if active > 0 {
		an.AvgHoursActiveDay = an.TotalHours / float64(active)
	}

	for _, r := range routines {
		idx := r.Day.Index()
		if idx < 0 {
			continue
		}
		an.ExercisesPlanned++
		if exercisedDays[idx] {
			an.ExercisesCompleted++
		}
	}
	if an.ExercisesPlanned > 0 {
		an.ExerciseRate = float64(an.ExercisesCompleted) / float64(an.ExercisesPlanned) * 100
	}
	return an
}
