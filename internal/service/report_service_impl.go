package service

import (
	"context"
	"time"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/report"
	"github.com/avictorov/studydesk/internal/repository"
)

type reportService struct {
	subjects repository.SubjectRepo
	routines repository.RoutineRepo
	entries  repository.EntryRepo
	profile  repository.ProfileRepo
	now      func() time.Time
}

func NewReportService(subjects repository.SubjectRepo, routines repository.RoutineRepo, entries repository.EntryRepo, profile repository.ProfileRepo) ReportService {
	return &reportService{
		subjects: subjects,
		routines: routines,
		entries:  entries,
		profile:  profile,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Daily(ctx context.Context, date time.Time) (*report.DailyReport, error) {
	entries, err := s.entries.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	routines, err := s.routines.ListByDay(ctx, domain.WeekdayOf(date))
	if err != nil {
		return nil, err
	}
	profile, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	rep := report.BuildDailyReport(date, entries, routines, profile)
	return &rep, nil
}

func (s *reportService) Weekly(ctx context.Context, weekStart time.Time) (*report.WeeklyAnalysis, error) {
	weekStart = domain.WeekStartOf(weekStart)
	entries, err := s.entries.ListByDateRange(ctx, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	routines, err := s.routines.List(ctx)
	if err != nil {
		return nil, err
	}
	an := report.BuildWeeklyAnalysis(weekStart, entries, routines)
	return &an, nil
}

func (s *reportService) Range(ctx context.Context, from, to time.Time) (*report.RangeSummary, error) {
	entries, err := s.entries.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := report.Summarize(entries, subjects)
	return &sum, nil
}

func (s *reportService) Progress(ctx context.Context) ([]report.SubjectProgress, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]report.SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		entries, err := s.entries.ListBySubject(ctx, subject.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, report.ComputeSubjectProgress(subject, entries, s.now()))
	}
	return out, nil
}

func (s *reportService) ProgressFor(ctx context.Context, subjectID int64) (*report.SubjectProgress, error) {
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	p := report.ComputeSubjectProgress(subject, entries, s.now())
	return &p, nil
}
