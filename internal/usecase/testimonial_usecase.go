package usecase

import (
	"context"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	MsgTestimonialFailed = "Une erreur est survenue lors de l'envoi du témoignage. Veuillez réessayer."
	MsgTestimonialSent   = "Merci pour votre témoignage !"
)

type testimonialUsecase struct {
	repo     domain.TestimonialRepository
	validate *validator.Validate
}

// NewTestimonialUsecase creates the testimonial submission pipeline
func NewTestimonialUsecase(repo domain.TestimonialRepository, validate *validator.Validate) domain.TestimonialUsecase {
	return &testimonialUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Submit validates and persists one testimonial, returning the stored record
// with its server-assigned identity. No notification is sent for testimonials.
func (uc *testimonialUsecase) Submit(ctx context.Context, form *domain.TestimonialSubmission) (*domain.Testimonial, error) {
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.BadRequest(validation.FormatValidationError(err))
	}

	t := &domain.Testimonial{
		AuthorName: strings.TrimSpace(form.AuthorName),
		AuthorRole: nullIfEmpty(strings.TrimSpace(form.AuthorRole)),
		Content:    strings.TrimSpace(form.Content),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		logger.Log.Error("Failed to store testimonial", "error", err)
		return nil, apperror.New(http.StatusInternalServerError, MsgTestimonialFailed, err)
	}

	return t, nil
}

func (uc *testimonialUsecase) List(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := uc.repo.Fetch(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch testimonials", "error", err)
		return nil, apperror.Internal(err)
	}
	return testimonials, nil
}
