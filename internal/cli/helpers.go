package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avictorov/studydesk/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD flag value, defaulting to today when empty.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

var weekdayAliases = map[string]domain.Weekday{
	"mon": domain.Monday, "monday": domain.Monday,
	"tue": domain.Tuesday, "tuesday": domain.Tuesday,
	"wed": domain.Wednesday, "wednesday": domain.Wednesday,
	"thu": domain.Thursday, "thursday": domain.Thursday,
	"fri": domain.Friday, "friday": domain.Friday,
	"sat": domain.Saturday, "saturday": domain.Saturday,
	"sun": domain.Sunday, "sunday": domain.Sunday,
}

// parseWeekday accepts short or full weekday names, case-insensitive.
func parseWeekday(s string) (domain.Weekday, error) {
	if day, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return day, nil
	}
	return "", fmt.Errorf("invalid day %q, expected mon..sun", s)
}

// parseID parses a positive integer ID argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}

// resolveSubject matches a subject by ID or unique name prefix.
func resolveSubject(ctx context.Context, app *App, input string) (*domain.Subject, error) {
	if input == "" {
		return nil, fmt.Errorf("subject is required")
	}

	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return nil, err
	}

	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		for _, s := range subjects {
			if s.ID == id {
				return s, nil
			}
		}
	}

	for _, s := range subjects {
		if strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}

	var matches []*domain.Subject
	for _, s := range subjects {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(input)) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("subject not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("subject %q is ambiguous (%d matches)", input, len(matches))
	}
}

// subjectNameMap builds an ID to name lookup for list formatting.
func subjectNameMap(ctx context.Context, app *App) (map[int64]string, error) {
	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	return names, nil
}

func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func parseFloatOr(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
