package domain

import (
	"fmt"
	"strings"
	"time"
)

type Subject struct {
	ID               int64
	Name             string
	Weightage        float64
	TargetTotalHours float64
	Difficulty       Difficulty
	TargetDate       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks required fields and the weightage invariant.
func (s *Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subject name is required")
	}
	if s.Weightage < 0 {
		return fmt.Errorf("weightage must not be negative, got %g", s.Weightage)
	}
	if s.TargetTotalHours < 0 {
		return fmt.Errorf("target total hours must not be negative, got %g", s.TargetTotalHours)
	}
	if s.Difficulty != "" && !ValidDifficulties[string(s.Difficulty)] {
		return fmt.Errorf("difficulty %q must be one of low, medium, high", s.Difficulty)
	}
	return nil
}
