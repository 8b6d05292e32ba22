package assistant

import (
	"fmt"
	"strings"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/report"
)

// StudyContext is the snapshot of stored data handed to the assistant
// alongside the student's question.
type StudyContext struct {
	Subjects []*domain.Subject
	Progress []report.SubjectProgress
	Recent   []*domain.DailyEntry
	Profile  *domain.StudentProfile
}

func buildTipsPrompt(question string, sc StudyContext) string {
	var b strings.Builder

	b.WriteString("You are a study assistant for a student working on the following subjects: ")
	if len(sc.Subjects) == 0 {
		b.WriteString("(none registered yet)")
	} else {
		names := make([]string, len(sc.Subjects))
		for i, s := range sc.Subjects {
			names[i] = s.Name
		}
		b.WriteString(strings.Join(names, ", "))
	}
	b.WriteString(".\n")

	if len(sc.Progress) > 0 {
		b.WriteString("\nCurrent progress:\n")
		for _, p := range sc.Progress {
			fmt.Fprintf(&b, "- %s: %.1f of %.1f hours (%.0f%%)\n",
				p.SubjectName, p.HoursLogged, p.TargetHours, p.ProgressPct)
		}
	}

	if len(sc.Recent) > 0 {
		var total float64
		for _, e := range sc.Recent {
			total += e.TotalHours()
		}
		fmt.Fprintf(&b, "\nIn the last %d logged entries the student studied %.1f hours total.\n",
			len(sc.Recent), total)
	}

	if sc.Profile != nil && sc.Profile.TargetDailyHours > 0 {
		fmt.Fprintf(&b, "The student aims for %.1f hours of study per day.\n", sc.Profile.TargetDailyHours)
	}

	b.WriteString("\nStudent's question: ")
	b.WriteString(question)
	b.WriteString("\n\nProvide helpful, practical study advice. Keep the response concise but informative.")

	return b.String()
}
