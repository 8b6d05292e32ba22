package formatter

import (
	"fmt"
	"strings"

	"github.com/avictorov/studydesk/internal/domain"
)

// FormatSubjectList renders subjects as a table.
func FormatSubjectList(subjects []*domain.Subject) string {
	if len(subjects) == 0 {
		return Dim("No subjects yet. Add one with: studydesk subject add")
	}

	rows := make([][]string, len(subjects))
	for i, s := range subjects {
		target := Dim("--")
		if s.TargetDate != nil {
			target = s.TargetDate.Format("2006-01-02")
		}
		rows[i] = []string{
			fmt.Sprintf("%d", s.ID),
			s.Name,
			fmt.Sprintf("%.1f", s.Weightage),
			FormatHours(s.TargetTotalHours),
			DifficultyBadge(s.Difficulty),
			target,
		}
	}
	return RenderTable(
		[]string{"ID", "Name", "Weight", "Target", "Difficulty", "Due"},
		rows)
}

// FormatRoutineList renders exercise routines as a table.
func FormatRoutineList(routines []*domain.ExerciseRoutine) string {
	if len(routines) == 0 {
		return Dim("No exercise routines yet. Add one with: studydesk routine add")
	}

	rows := make([][]string, len(routines))
	for i, r := range routines {
		rows[i] = []string{
			fmt.Sprintf("%d", r.ID),
			r.Day.Label(),
			r.ExerciseType,
			FormatMinutes(r.DurationMin),
			IntensityBadge(r.Intensity),
			r.Notes,
		}
	}
	return RenderTable(
		[]string{"ID", "Day", "Exercise", "Duration", "Intensity", "Notes"},
		rows)
}

// FormatEntryList renders daily entries as a table. Subject names are
// looked up from the provided map; unknown IDs render dimmed.
func FormatEntryList(entries []*domain.DailyEntry, subjectNames map[int64]string) string {
	if len(entries) == 0 {
		return Dim("No entries logged.")
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		name, ok := subjectNames[e.SubjectID]
		if !ok {
			name = Dim(fmt.Sprintf("subject %d", e.SubjectID))
		}
		exercise := Dim("--")
		if e.ExerciseDone {
			exercise = StyleGreen.Render("✔ " + FormatMinutes(e.ExerciseMin))
		}
		rows[i] = []string{
			fmt.Sprintf("%d", e.ID),
			e.EntryDate.Format("2006-01-02"),
			name,
			FormatHours(e.LectureHours),
			FormatHours(e.QuestionHours),
			fmt.Sprintf("%d", e.QuestionsSolved),
			exercise,
			MoodPill(e.Mood),
		}
	}
	return RenderTable(
		[]string{"ID", "Date", "Subject", "Lecture", "Questions", "Solved", "Exercise", "Mood"},
		rows)
}

// FormatSlotList renders plan slots grouped into a table. Slots with no
// subject show the session type alone.
func FormatSlotList(slots []*domain.PlanSlot, subjectNames map[int64]string) string {
	if len(slots) == 0 {
		return Dim("No plan slots. Add one with: studydesk plan add")
	}

	rows := make([][]string, len(slots))
	for i, slot := range slots {
		subject := Dim("--")
		if slot.SubjectID != nil {
			if name, ok := subjectNames[*slot.SubjectID]; ok {
				subject = name
			} else {
				subject = Dim(fmt.Sprintf("subject %d", *slot.SubjectID))
			}
		}
		rows[i] = []string{
			fmt.Sprintf("%d", slot.ID),
			slot.Day.Label(),
			TimeRange(slot.StartTime, slot.EndTime),
			subject,
			slot.SessionType,
			fmt.Sprintf("%d", slot.Priority),
		}
	}
	return RenderTable(
		[]string{"ID", "Day", "Time", "Subject", "Type", "Priority"},
		rows)
}

// FormatProfile renders the student profile card.
func FormatProfile(p *domain.StudentProfile) string {
	var b strings.Builder
	name := p.Name
	if name == "" {
		name = Dim("(unnamed)")
	}
	fmt.Fprintf(&b, "Name:         %s\n", name)
	fmt.Fprintf(&b, "Daily target: %s\n", FormatHours(p.TargetDailyHours))
	fmt.Fprintf(&b, "Wakeup:       %s\n", p.WakeupTime)
	fmt.Fprintf(&b, "Bedtime:      %s", p.Bedtime)
	return RenderBox("Profile", b.String())
}
