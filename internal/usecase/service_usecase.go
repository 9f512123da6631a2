package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type serviceUsecase struct {
	repo domain.ServiceRepository
}

func NewServiceUsecase(repo domain.ServiceRepository) domain.ServiceUsecase {
	return &serviceUsecase{repo: repo}
}

func (uc *serviceUsecase) List(ctx context.Context) ([]domain.Service, error) {
	services, err := uc.repo.Fetch(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch services", "error", err)
		return nil, apperror.Internal(err)
	}
	return services, nil
}
