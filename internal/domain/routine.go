package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExerciseRoutine is a planned exercise on a fixed day of the week.
type ExerciseRoutine struct {
	ID           int64
	ExerciseType string
	Day          Weekday
	DurationMin  int
	Intensity    Intensity
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *ExerciseRoutine) Validate() error {
	if strings.TrimSpace(r.ExerciseType) == "" {
		return fmt.Errorf("exercise type is required")
	}
	if !ValidWeekdays[string(r.Day)] {
		return fmt.Errorf("day %q must be one of mon..sun", r.Day)
	}
	if r.DurationMin < 0 {
		return fmt.Errorf("duration must not be negative, got %d", r.DurationMin)
	}
	if r.Intensity != "" && !ValidIntensities[string(r.Intensity)] {
		return fmt.Errorf("intensity %q must be one of light, moderate, intense", r.Intensity)
	}
	return nil
}
