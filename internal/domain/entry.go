package domain

import (
	"fmt"
	"time"
)

// DailyEntry records one day of study work against a subject.
// At most one entry exists per subject and date; logging again for the
// same pair overwrites the existing row.
type DailyEntry struct {
	ID              int64
	SubjectID       int64
	EntryDate       time.Time
	LectureHours    float64
	QuestionHours   float64
	QuestionsSolved int
	ExerciseDone    bool
	ExerciseMin     int
	Mood            Mood
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalHours returns lecture plus question hours for the entry.
func (e *DailyEntry) TotalHours() float64 {
	return e.LectureHours + e.QuestionHours
}

func (e *DailyEntry) Validate() error {
	if e.SubjectID == 0 {
		return fmt.Errorf("subject is required")
	}
	if e.EntryDate.IsZero() {
		return fmt.Errorf("entry date is required")
	}
	if e.LectureHours < 0 || e.QuestionHours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	if e.QuestionsSolved < 0 {
		return fmt.Errorf("questions solved must not be negative, got %d", e.QuestionsSolved)
	}
	if e.ExerciseMin < 0 {
		return fmt.Errorf("exercise minutes must not be negative, got %d", e.ExerciseMin)
	}
	if e.Mood != "" && !ValidMoods[string(e.Mood)] {
		return fmt.Errorf("mood %q must be one of great, good, okay, tired, stressed", e.Mood)
	}
	return nil
}
