package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/repository"
)

type planService struct {
	slots repository.PlanSlotRepo
	uow   db.UnitOfWork
}

func NewPlanService(slots repository.PlanSlotRepo, uow db.UnitOfWork) PlanService {
	return &planService{slots: slots, uow: uow}
}

func (s *planService) Create(ctx context.Context, p *domain.PlanSlot) error {
	if err := p.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.slots.Create(ctx, p)
	return err
}

func (s *planService) GetByID(ctx context.Context, id int64) (*domain.PlanSlot, error) {
	return s.slots.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.PlanSlot, error) {
	return s.slots.List(ctx)
}

func (s *planService) ListByDay(ctx context.Context, day domain.Weekday) ([]*domain.PlanSlot, error) {
	return s.slots.ListByDay(ctx, day)
}

func (s *planService) Update(ctx context.Context, p *domain.PlanSlot) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.slots.Update(ctx, p)
}

func (s *planService) Delete(ctx context.Context, id int64) error {
	return s.slots.Delete(ctx, id)
}

// ReplaceDay swaps a day's schedule for the given slots in one
// transaction. Every slot is validated up front so a bad one leaves the
// existing schedule untouched.
func (s *planService) ReplaceDay(ctx context.Context, day domain.Weekday, slots []*domain.PlanSlot) error {
	if !domain.ValidWeekdays[string(day)] {
		return fmt.Errorf("invalid day of week %q", day)
	}
	for _, slot := range slots {
		if slot.Day != day {
			return fmt.Errorf("slot scheduled for %q does not belong to %q", slot.Day, day)
		}
		if err := slot.Validate(); err != nil {
			return err
		}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSlots := repository.NewSQLitePlanSlotRepo(tx)

		if _, err := txSlots.DeleteByDay(ctx, day); err != nil {
			return err
		}
		now := time.Now().UTC()
		for _, slot := range slots {
			slot.CreatedAt = now
			slot.UpdatedAt = now
			if _, err := txSlots.Create(ctx, slot); err != nil {
				return err
			}
		}
		return nil
	})
}
