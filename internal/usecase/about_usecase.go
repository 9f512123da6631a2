package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type aboutUsecase struct {
	skills   domain.SkillRepository
	timeline domain.TimelineRepository
}

// NewAboutUsecase groups the read-only collections backing the about page
func NewAboutUsecase(skills domain.SkillRepository, timeline domain.TimelineRepository) domain.AboutUsecase {
	return &aboutUsecase{
		skills:   skills,
		timeline: timeline,
	}
}

func (uc *aboutUsecase) Skills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := uc.skills.Fetch(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch skills", "error", err)
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (uc *aboutUsecase) Timeline(ctx context.Context) ([]domain.TimelineEvent, error) {
	events, err := uc.timeline.Fetch(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch timeline", "error", err)
		return nil, apperror.Internal(err)
	}
	return events, nil
}
