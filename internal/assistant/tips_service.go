package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avictorov/studydesk/internal/llm"
	"github.com/avictorov/studydesk/internal/report"
	"github.com/avictorov/studydesk/internal/repository"
)

// Answer sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// TipsAnswer is the assistant's reply to a study question.
type TipsAnswer struct {
	Answer string
	Source string
}

// TipsService answers free-form study questions grounded in the
// student's stored subjects and entries.
type TipsService interface {
	Ask(ctx context.Context, question string) (*TipsAnswer, error)
}

type tipsService struct {
	client   llm.Client
	subjects repository.SubjectRepo
	entries  repository.EntryRepo
	profile  repository.ProfileRepo
	now      func() time.Time
}

// NewTipsService creates a TipsService backed by a generation client.
// A nil client means every answer comes from the deterministic fallback.
func NewTipsService(client llm.Client, subjects repository.SubjectRepo, entries repository.EntryRepo, profile repository.ProfileRepo) TipsService {
	return &tipsService{
		client:   client,
		subjects: subjects,
		entries:  entries,
		profile:  profile,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *tipsService) Ask(ctx context.Context, question string) (*TipsAnswer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question must not be empty")
	}

	sc, err := s.loadContext(ctx)
	if err != nil {
		return nil, err
	}

	if s.client == nil {
		return DeterministicTips(sc), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Prompt: buildTipsPrompt(question, sc),
	})
	if err != nil {
		return DeterministicTips(sc), nil
	}

	return &TipsAnswer{Answer: resp.Text, Source: SourceAI}, nil
}

func (s *tipsService) loadContext(ctx context.Context) (StudyContext, error) {
	var sc StudyContext

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return sc, err
	}
	sc.Subjects = subjects

	for _, subject := range subjects {
		entries, err := s.entries.ListBySubject(ctx, subject.ID)
		if err != nil {
			return sc, err
		}
		sc.Progress = append(sc.Progress, report.ComputeSubjectProgress(subject, entries, s.now()))
	}

	weekAgo := s.now().AddDate(0, 0, -7)
	recent, err := s.entries.ListByDateRange(ctx, weekAgo, s.now())
	if err != nil {
		return sc, err
	}
	sc.Recent = recent

	profile, err := s.profile.Get(ctx)
	if err != nil {
		return sc, err
	}
	sc.Profile = profile

	return sc, nil
}
