package report

import (
	"time"

	"github.com/avictorov/studydesk/internal/domain"
)

// SubjectProgress measures a subject's logged hours against its target.
type SubjectProgress struct {
	SubjectID     int64
	SubjectName   string
	HoursLogged   float64
	TargetHours   float64
	ProgressPct   float64
	RemainingHrs  float64
	DaysRemaining int
	HoursPerDay   float64
	Pace          domain.PaceStatus
}

// ComputeSubjectProgress evaluates one subject from its own entries.
// ProgressPct is capped at 100. When the subject has a target date in
// the future, HoursPerDay is the remaining workload spread over the
// remaining days; pace is behind when that exceeds the required average
// implied by the original target window. Without a target date the pace
// is on_track until the target is met.
func ComputeSubjectProgress(subject *domain.Subject, entries []*domain.DailyEntry, now time.Time) SubjectProgress {
	p := SubjectProgress{
		SubjectID:   subject.ID,
		SubjectName: subject.Name,
		TargetHours: subject.TargetTotalHours,
	}
	for _, e := range entries {
		p.HoursLogged += e.TotalHours()
	}

	if p.TargetHours > 0 {
		p.ProgressPct = p.HoursLogged / p.TargetHours * 100
		if p.ProgressPct > 100 {
			p.ProgressPct = 100
		}
	}
	p.RemainingHrs = p.TargetHours - p.HoursLogged
	if p.RemainingHrs < 0 {
		p.RemainingHrs = 0
	}

	if p.RemainingHrs == 0 && p.TargetHours > 0 {
		p.Pace = domain.PaceDone
		return p
	}
	p.Pace = domain.PaceOnTrack

	if subject.TargetDate == nil {
		return p
	}
	days := int(subject.TargetDate.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	p.DaysRemaining = days
	if days > 0 {
		p.HoursPerDay = p.RemainingHrs / float64(days)
	}
	if (days == 0 && p.RemainingHrs > 0) || p.HoursPerDay > maxSustainableHoursPerDay {
		p.Pace = domain.PaceBehind
	}
	return p
}

// A required daily load above this reads as behind schedule.
const maxSustainableHoursPerDay = 12.0
