package service

import (
	"context"
	"time"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/repository"
)

type routineService struct {
	routines repository.RoutineRepo
}

func NewRoutineService(routines repository.RoutineRepo) RoutineService {
	return &routineService{routines: routines}
}

func (s *routineService) Create(ctx context.Context, r *domain.ExerciseRoutine) error {
	if err := r.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := s.routines.Create(ctx, r)
	return err
}

func (s *routineService) GetByID(ctx context.Context, id int64) (*domain.ExerciseRoutine, error) {
	return s.routines.GetByID(ctx, id)
}

func (s *routineService) List(ctx context.Context) ([]*domain.ExerciseRoutine, error) {
	return s.routines.List(ctx)
}

func (s *routineService) ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.ExerciseRoutine, error) {
	return s.routines.ListByDay(ctx, day)
}

func (s *routineService) Update(ctx context.Context, r *domain.ExerciseRoutine) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	return s.routines.Update(ctx, r)
}

func (s *routineService) Delete(ctx context.Context, id int64) error {
	return s.routines.Delete(ctx, id)
}
