package repository

import (
	"context"
	"time"

	"github.com/avictorov/studydesk/internal/domain"
)

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id int64) error
}

type RoutineRepo interface {
	Create(ctx context.Context, r *domain.ExerciseRoutine) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ExerciseRoutine, error)
	List(ctx context.Context) ([]*domain.ExerciseRoutine, error)
	ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.ExerciseRoutine, error)
	Update(ctx context.Context, r *domain.ExerciseRoutine) error
	Delete(ctx context.Context, id int64) error
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.DailyEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.DailyEntry, error)
	GetBySubjectAndDate(ctx context.Context, subjectID int64, date time.Time) (*domain.DailyEntry, error)
	List(ctx context.Context) ([]*domain.DailyEntry, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.DailyEntry, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DailyEntry, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]*domain.DailyEntry, error)
	Update(ctx context.Context, e *domain.DailyEntry) error
	Delete(ctx context.Context, id int64) error
}

type PlanSlotRepo interface {
	Create(ctx context.Context, p *domain.PlanSlot) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.PlanSlot, error)
	List(ctx context.Context) ([]*domain.PlanSlot, error)
	ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.PlanSlot, error)
	Update(ctx context.Context, p *domain.PlanSlot) error
	Delete(ctx context.Context, id int64) error
	DeleteByDay(ctx context.Context, day domain.Weekday) (int64, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Upsert(ctx context.Context, p *domain.StudentProfile) error
}
