package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type projectUsecase struct {
	repo domain.ProjectRepository
}

func NewProjectUsecase(repo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{repo: repo}
}

func (uc *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := uc.repo.Fetch(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch projects", "error", err)
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

func (uc *projectUsecase) Get(ctx context.Context, id string) (*domain.ProjectDetail, error) {
	project, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Projet introuvable.")
	}
	if err != nil {
		logger.Log.Error("Failed to fetch project", "id", id, "error", err)
		return nil, apperror.Internal(err)
	}
	return project, nil
}
