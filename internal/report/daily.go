package report

import (
	"time"

	"github.com/avictorov/studydesk/internal/domain"
)

// DailyReport summarizes one calendar day against the profile target.
type DailyReport struct {
	Date             time.Time
	TotalHours       float64
	LectureHours     float64
	QuestionHours    float64
	QuestionsSolved  int
	TargetHours      float64
	TargetPct        float64
	SubjectsStudied  int
	ExerciseDone     bool
	ExerciseMin      int
	PlannedExercises int
	Moods            []domain.Mood
}

// BuildDailyReport folds the day's entries and that weekday's planned
// routines into a report. TargetPct is uncapped so overshooting the
// daily target reads above 100.
func BuildDailyReport(date time.Time, entries []*domain.DailyEntry, routines []*domain.ExerciseRoutine, profile *domain.StudentProfile) DailyReport {
	rep := DailyReport{
		Date:             date,
		PlannedExercises: len(routines),
	}
	if profile != nil {
		rep.TargetHours = profile.TargetDailyHours
	}

	subjects := make(map[int64]bool)
	for _, e := range entries {
		rep.LectureHours += e.LectureHours
		rep.QuestionHours += e.QuestionHours
		rep.QuestionsSolved += e.QuestionsSolved
		subjects[e.SubjectID] = true
		if e.ExerciseDone {
			rep.ExerciseDone = true
			rep.ExerciseMin += e.ExerciseMin
		}
		rep.Moods = append(rep.Moods, e.Mood)
	}
	rep.TotalHours = rep.LectureHours + rep.QuestionHours
	rep.SubjectsStudied = len(subjects)
	if rep.TargetHours > 0 {
		rep.TargetPct = rep.TotalHours / rep.TargetHours * 100
	}
	return rep
}
