package report

import (
	"sort"

	"github.com/avictorov/studydesk/internal/domain"
)

// SubjectShare is one subject's slice of the logged hours in a range.
type SubjectShare struct {
	SubjectID       int64
	SubjectName     string
	LectureHours    float64
	QuestionHours   float64
	TotalHours      float64
	SharePct        float64
	QuestionsSolved int
	DaysStudied     int
}

// RangeSummary holds aggregate figures for a date range.
type RangeSummary struct {
	TotalLectureHours  float64
	TotalQuestionHours float64
	TotalHours         float64
	QuestionsSolved    int
	DaysWithEntries    int
	Shares             []SubjectShare
}

// Summarize computes range totals and per-subject shares from stored rows.
// Share percent is subject hours / total hours × 100; with no logged hours
// every share is 0 rather than a division fault. Shares are ordered by
// hours descending, then name.
func Summarize(entries []*domain.DailyEntry, subjects []*domain.Subject) RangeSummary {
	names := make(map[int64]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}

	var summary RangeSummary
	bySubject := make(map[int64]*SubjectShare)
	daysSeen := make(map[string]bool)
	subjectDays := make(map[int64]map[string]bool)

	for _, e := range entries {
		summary.TotalLectureHours += e.LectureHours
		summary.TotalQuestionHours += e.QuestionHours
		summary.QuestionsSolved += e.QuestionsSolved
		day := e.EntryDate.Format("2006-01-02")
		daysSeen[day] = true

		share, ok := bySubject[e.SubjectID]
		if !ok {
			share = &SubjectShare{SubjectID: e.SubjectID, SubjectName: names[e.SubjectID]}
			bySubject[e.SubjectID] = share
			subjectDays[e.SubjectID] = make(map[string]bool)
		}
		share.LectureHours += e.LectureHours
		share.QuestionHours += e.QuestionHours
		share.TotalHours += e.TotalHours()
		share.QuestionsSolved += e.QuestionsSolved
		subjectDays[e.SubjectID][day] = true
	}

	summary.TotalHours = summary.TotalLectureHours + summary.TotalQuestionHours
	summary.DaysWithEntries = len(daysSeen)

	for id, share := range bySubject {
		share.DaysStudied = len(subjectDays[id])
		if summary.TotalHours > 0 {
			share.SharePct = share.TotalHours / summary.TotalHours * 100
		}
		summary.Shares = append(summary.Shares, *share)
	}

	sort.Slice(summary.Shares, func(i, j int) bool {
		if summary.Shares[i].TotalHours != summary.Shares[j].TotalHours {
			return summary.Shares[i].TotalHours > summary.Shares[j].TotalHours
		}
		return summary.Shares[i].SubjectName < summary.Shares[j].SubjectName
	})

	return summary
}
