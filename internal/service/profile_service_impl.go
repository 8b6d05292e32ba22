package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/avictorov/studydesk/internal/repository"
)

type profileService struct {
	profile repository.ProfileRepo
}

func NewProfileService(profile repository.ProfileRepo) ProfileService {
	return &profileService{profile: profile}
}

func (s *profileService) Get(ctx context.Context) (*domain.StudentProfile, error) {
	return s.profile.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.StudentProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if p.TargetDailyHours < 0 || p.TargetDailyHours > 24 {
		return fmt.Errorf("target daily hours must be between 0 and 24, got %.1f", p.TargetDailyHours)
	}
	return s.profile.Upsert(ctx, p)
}
