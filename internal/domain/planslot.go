package domain

import (
	"fmt"
	"regexp"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// PlanSlot is one block in the weekly study planner. SubjectID is nil for
// unassigned blocks such as breaks or revision time.
type PlanSlot struct {
	ID          int64
	Day         Weekday
	SubjectID   *int64
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	SessionType string
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *PlanSlot) Validate() error {
	if !ValidWeekdays[string(p.Day)] {
		return fmt.Errorf("day %q must be one of mon..sun", p.Day)
	}
	if !clockPattern.MatchString(p.StartTime) {
		return fmt.Errorf("start time %q must be HH:MM", p.StartTime)
	}
	if !clockPattern.MatchString(p.EndTime) {
		return fmt.Errorf("end time %q must be HH:MM", p.EndTime)
	}
	// HH:MM strings compare correctly as text.
	if p.StartTime >= p.EndTime {
		return fmt.Errorf("start time %s must be before end time %s", p.StartTime, p.EndTime)
	}
	if p.Priority < 0 {
		return fmt.Errorf("priority must not be negative, got %d", p.Priority)
	}
	return nil
}

// DurationMin returns the slot length in minutes, or 0 for malformed times.
func (p *PlanSlot) DurationMin() int {
	start, err1 := time.Parse("15:04", p.StartTime)
	end, err2 := time.Parse("15:04", p.EndTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Minutes())
}
