package assistant

import (
	"fmt"
	"strings"

	"github.com/avictorov/studydesk/internal/domain"
)

// DeterministicTips produces study advice without the model, derived
// from the stored data itself. Used whenever the generation call fails
// or no API key is configured.
func DeterministicTips(sc StudyContext) *TipsAnswer {
	var lines []string

	for _, p := range sc.Progress {
		switch p.Pace {
		case domain.PaceBehind:
			if p.DaysRemaining > 0 {
				lines = append(lines, fmt.Sprintf(
					"%s is behind schedule: %.1f hours remain with %d days to go. Plan roughly %.1f hours per day for it.",
					p.SubjectName, p.RemainingHrs, p.DaysRemaining, p.HoursPerDay))
			} else {
				lines = append(lines, fmt.Sprintf(
					"%s is past its target date with %.1f hours still to cover. Consider moving the target date.",
					p.SubjectName, p.RemainingHrs))
			}
		case domain.PaceDone:
			lines = append(lines, fmt.Sprintf("%s has reached its target. Shift that study time to weaker subjects.", p.SubjectName))
		}
	}

	if len(sc.Recent) == 0 {
		lines = append(lines, "No study entries logged recently. Start by logging today's hours so progress tracking has data to work with.")
	} else {
		var total float64
		exercised := 0
		for _, e := range sc.Recent {
			total += e.TotalHours()
			if e.ExerciseDone {
				exercised++
			}
		}
		avg := total / float64(len(sc.Recent))
		if sc.Profile != nil && sc.Profile.TargetDailyHours > 0 && avg < sc.Profile.TargetDailyHours {
			lines = append(lines, fmt.Sprintf(
				"Recent sessions average %.1f hours against a %.1f hour daily target. Shorter but more frequent sessions can close that gap.",
				avg, sc.Profile.TargetDailyHours))
		}
		if exercised == 0 {
			lines = append(lines, "No exercise logged with recent entries. Even a short walk between sessions improves retention.")
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "Progress looks steady. Keep logging daily entries and review your weekly analysis to spot weak days early.")
	}

	return &TipsAnswer{
		Answer: strings.Join(lines, "\n"),
		Source: SourceFallback,
	}
}
