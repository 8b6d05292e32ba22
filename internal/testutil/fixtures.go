package testutil

import (
	"time"

	"github.com/avictorov/studydesk/internal/domain"
)

// Subject options
type SubjectOption func(*domain.Subject)

func WithWeightage(w float64) SubjectOption {
	return func(s *domain.Subject) {
		s.Weightage = w
	}
}

func WithTargetTotalHours(h float64) SubjectOption {
	return func(s *domain.Subject) {
		s.TargetTotalHours = h
	}
}

func WithDifficulty(d domain.Difficulty) SubjectOption {
	return func(s *domain.Subject) {
		s.Difficulty = d
	}
}

func WithTargetDate(d time.Time) SubjectOption {
	return func(s *domain.Subject) {
		s.TargetDate = &d
	}
}

func NewTestSubject(name string, opts ...SubjectOption) *domain.Subject {
	now := time.Now().UTC()
	s := &domain.Subject{
		Name:             name,
		Weightage:        1,
		TargetTotalHours: 100,
		Difficulty:       domain.DifficultyMedium,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DailyEntry options
type EntryOption func(*domain.DailyEntry)

func WithHours(lecture, question float64) EntryOption {
	return func(e *domain.DailyEntry) {
		e.LectureHours = lecture
		e.QuestionHours = question
	}
}

func WithQuestionsSolved(n int) EntryOption {
	return func(e *domain.DailyEntry) {
		e.QuestionsSolved = n
	}
}

func WithExercise(done bool, minutes int) EntryOption {
	return func(e *domain.DailyEntry) {
		e.ExerciseDone = done
		e.ExerciseMin = minutes
	}
}

func WithMood(m domain.Mood) EntryOption {
	return func(e *domain.DailyEntry) {
		e.Mood = m
	}
}

func NewTestEntry(subjectID int64, date time.Time, opts ...EntryOption) *domain.DailyEntry {
	now := time.Now().UTC()
	e := &domain.DailyEntry{
		SubjectID: subjectID,
		EntryDate: date,
		Mood:      domain.MoodGood,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExerciseRoutine fixture
func NewTestRoutine(exerciseType string, day domain.Weekday) *domain.ExerciseRoutine {
	now := time.Now().UTC()
	return &domain.ExerciseRoutine{
		ExerciseType: exerciseType,
		Day:          day,
		DurationMin:  30,
		Intensity:    domain.IntensityModerate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PlanSlot fixture
func NewTestSlot(day domain.Weekday, subjectID *int64, start, end string) *domain.PlanSlot {
	now := time.Now().UTC()
	return &domain.PlanSlot{
		Day:         day,
		SubjectID:   subjectID,
		StartTime:   start,
		EndTime:     end,
		SessionType: "study",
		Priority:    1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Date parses a YYYY-MM-DD string, panicking on malformed input.
// For fixture literals only.
func Date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
