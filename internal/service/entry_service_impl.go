package service

import (
	"context"
	"errors"
	"time"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/repository"
)

type entryService struct {
	entries repository.EntryRepo
	uow     db.UnitOfWork
}

func NewEntryService(entries repository.EntryRepo, uow db.UnitOfWork) EntryService {
	return &entryService{entries: entries, uow: uow}
}

// Log records a day's work for a subject. A second log for the same
// subject and date overwrites the stored figures instead of piling up
// duplicate rows.
func (s *entryService) Log(ctx context.Context, e *domain.DailyEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		txSubjects := repository.NewSQLiteSubjectRepo(tx)

		if _, err := txSubjects.GetByID(ctx, e.SubjectID); err != nil {
			return err
		}

		now := time.Now().UTC()
		existing, err := txEntries.GetBySubjectAndDate(ctx, e.SubjectID, e.EntryDate)
		switch {
		case err == nil:
			e.ID = existing.ID
			e.CreatedAt = existing.CreatedAt
			e.UpdatedAt = now
			return txEntries.Update(ctx, e)
		case errors.Is(err, repository.ErrNotFound):
			e.CreatedAt = now
			e.UpdatedAt = now
			_, err := txEntries.Create(ctx, e)
			return err
		default:
			return err
		}
	})
}

func (s *entryService) GetByID(ctx context.Context, id int64) (*domain.DailyEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) ListByDate(ctx context.Context, date time.Time) ([]*domain.DailyEntry, error) {
	return s.entries.ListByDate(ctx, date)
}

func (s *entryService) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DailyEntry, error) {
	return s.entries.ListByDateRange(ctx, from, to)
}

func (s *entryService) ListBySubject(ctx context.Context, subjectID int64) ([]*domain.DailyEntry, error) {
	return s.entries.ListBySubject(ctx, subjectID)
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	return s.entries.Delete(ctx, id)
}
