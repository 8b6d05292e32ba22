package service

import (
	"context"
	"time"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/repository"
)

type subjectService struct {
	subjects repository.SubjectRepo
}

func NewSubjectService(subjects repository.SubjectRepo) SubjectService {
	return &subjectService{subjects: subjects}
}

func (s *subjectService) Create(ctx context.Context, subject *domain.Subject) error {
	if err := subject.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	subject.CreatedAt = now
	subject.UpdatedAt = now
	_, err := s.subjects.Create(ctx, subject)
	return err
}

func (s *subjectService) GetByID(ctx context.Context, id int64) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectService) Update(ctx context.Context, subject *domain.Subject) error {
	if err := subject.Validate(); err != nil {
		return err
	}
	subject.UpdatedAt = time.Now().UTC()
	return s.subjects.Update(ctx, subject)
}

func (s *subjectService) Delete(ctx context.Context, id int64) error {
	return s.subjects.Delete(ctx, id)
}
