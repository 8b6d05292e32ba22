package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/report"
)

// FormatDailyReport renders a single day's report.
func FormatDailyReport(rep *report.DailyReport) string {
	var b strings.Builder

	b.WriteString(Header("Daily report · " + rep.Date.Format("Mon Jan 2, 2006")))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s  %s of %s target  %s\n",
		Bold(FormatHours(rep.TotalHours)),
		Dim("studied,"),
		FormatHours(rep.TargetHours),
		RenderProgress(rep.TargetPct/100, 20))
	fmt.Fprintf(&b, "%s lecture · %s questions · %d solved\n",
		FormatHours(rep.LectureHours), FormatHours(rep.QuestionHours), rep.QuestionsSolved)
	fmt.Fprintf(&b, "Subjects touched: %d\n", rep.SubjectsStudied)

	if rep.PlannedExercises > 0 || rep.ExerciseDone {
		status := StyleRed.Render("not done")
		if rep.ExerciseDone {
			status = StyleGreen.Render("done") + Dim(fmt.Sprintf(" (%s)", FormatMinutes(rep.ExerciseMin)))
		}
		fmt.Fprintf(&b, "Exercise: %s", status)
		if rep.PlannedExercises > 0 {
			fmt.Fprintf(&b, " %s", Dim(fmt.Sprintf("· %d planned", rep.PlannedExercises)))
		}
		b.WriteString("\n")
	}

	if len(rep.Moods) > 0 {
		pills := make([]string, len(rep.Moods))
		for i, m := range rep.Moods {
			pills[i] = MoodPill(m)
		}
		fmt.Fprintf(&b, "Mood: %s\n", strings.Join(pills, " "))
	}

	return b.String()
}

// FormatWeeklyAnalysis renders the week view with per-day hour bars.
func FormatWeeklyAnalysis(an *report.WeeklyAnalysis) string {
	var b strings.Builder

	b.WriteString(Header("Week of " + an.WeekStart.Format("Jan 2, 2006")))
	b.WriteString("\n\n")

	maxHours := 0.0
	for _, d := range an.Days {
		if d.TotalHours > maxHours {
			maxHours = d.TotalHours
		}
	}
	for _, d := range an.Days {
		fmt.Fprintf(&b, "%-4s %s %s\n",
			d.Day.Label()[:3],
			RenderHourBar(d.TotalHours, maxHours, 24),
			Dim(FormatHours(d.TotalHours)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total %s · avg %s/day", Bold(FormatHours(an.TotalHours)), FormatHours(an.AvgHoursPerDay))
	if an.MostProductiveDay != "" {
		fmt.Fprintf(&b, " · best day %s", Bold(an.MostProductiveDay.Label()))
	}
	b.WriteString("\n")

	if an.ExercisesPlanned > 0 {
		fmt.Fprintf(&b, "Exercise: %d of %d planned (%.0f%%)\n",
			an.ExercisesCompleted, an.ExercisesPlanned, an.ExerciseRate)
	}

	if len(an.MoodCounts) > 0 {
		b.WriteString("Moods: ")
		b.WriteString(formatMoodCounts(an.MoodCounts))
		b.WriteString("\n")
	}

	return b.String()
}

func formatMoodCounts(counts map[domain.Mood]int) string {
	type mc struct {
		mood  domain.Mood
		count int
	}
	ordered := make([]mc, 0, len(counts))
	for m, n := range counts {
		ordered = append(ordered, mc{m, n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].mood < ordered[j].mood
	})

	parts := make([]string, len(ordered))
	for i, e := range ordered {
		parts[i] = fmt.Sprintf("%s ×%d", MoodPill(e.mood), e.count)
	}
	return strings.Join(parts, "  ")
}

// FormatRangeSummary renders totals and per-subject shares for a range.
func FormatRangeSummary(sum *report.RangeSummary) string {
	var b strings.Builder

	b.WriteString(Header("Summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total %s · %s lecture · %s questions · %d solved · %d active days\n\n",
		Bold(FormatHours(sum.TotalHours)),
		FormatHours(sum.TotalLectureHours),
		FormatHours(sum.TotalQuestionHours),
		sum.QuestionsSolved,
		sum.DaysWithEntries)

	if len(sum.Shares) == 0 {
		b.WriteString(Dim("No entries in this range."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, len(sum.Shares))
	for i, share := range sum.Shares {
		rows[i] = []string{
			share.SubjectName,
			FormatHours(share.TotalHours),
			fmt.Sprintf("%.1f%%", share.SharePct),
			fmt.Sprintf("%d", share.QuestionsSolved),
			fmt.Sprintf("%d", share.DaysStudied),
		}
	}
	b.WriteString(RenderTable(
		[]string{"Subject", "Hours", "Share", "Solved", "Days"},
		rows))

	return b.String()
}

// FormatProgressList renders the per-subject progress table.
func FormatProgressList(items []report.SubjectProgress) string {
	if len(items) == 0 {
		return Dim("No subjects yet. Add one with: studydesk subject add")
	}

	rows := make([][]string, len(items))
	for i, p := range items {
		remaining := FormatHours(p.RemainingHrs)
		if p.DaysRemaining > 0 {
			remaining += Dim(fmt.Sprintf(" in %dd", p.DaysRemaining))
		}
		rows[i] = []string{
			p.SubjectName,
			RenderProgress(p.ProgressPct/100, 16),
			fmt.Sprintf("%s / %s", FormatHours(p.HoursLogged), FormatHours(p.TargetHours)),
			remaining,
			PaceIndicator(p.Pace),
		}
	}
	return RenderTable(
		[]string{"Subject", "Progress", "Logged", "Remaining", "Pace"},
		rows)
}
