package service

import (
	"context"
	"time"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/report"
)

type SubjectService interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id int64) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id int64) error
}

type RoutineService interface {
	Create(ctx context.Context, r *domain.ExerciseRoutine) error
	GetByID(ctx context.Context, id int64) (*domain.ExerciseRoutine, error)
	List(ctx context.Context) ([]*domain.ExerciseRoutine, error)
	ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.ExerciseRoutine, error)
	Update(ctx context.Context, r *domain.ExerciseRoutine) error
	Delete(ctx context.Context, id int64) error
}

type EntryService interface {
	Log(ctx context.Context, e *domain.DailyEntry) error
	GetByID(ctx context.Context, id int64) (*domain.DailyEntry, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.DailyEntry, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DailyEntry, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]*domain.DailyEntry, error)
	Delete(ctx context.Context, id int64) error
}

type PlanService interface {
	Create(ctx context.Context, p *domain.PlanSlot) error
	GetByID(ctx context.Context, id int64) (*domain.PlanSlot, error)
	List(ctx context.Context) ([]*domain.PlanSlot, error)
	ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.PlanSlot, error)
	Update(ctx context.Context, p *domain.PlanSlot) error
	Delete(ctx context.Context, id int64) error
	ReplaceDay(ctx context.Context, day domain.Weekday, slots []*domain.PlanSlot) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Update(ctx context.Context, p *domain.StudentProfile) error
}

type ReportService interface {
	Daily(ctx context.Context, date time.Time) (*report.DailyReport, error)
	Weekly(ctx context.Context, weekStart time.Time) (*report.WeeklyAnalysis, error)
	Range(ctx context.Context, from, to time.Time) (*report.RangeSummary, error)
	Progress(ctx context.Context) ([]report.SubjectProgress, error)
	ProgressFor(ctx context.Context, subjectID int64) (*report.SubjectProgress, error)
}
