package usecase

import (
	"context"
	"net/http"
	"regexp"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/notify"
)

// User-facing messages, identical to the ones the site displays.
const (
	MsgMissingFields = "Veuillez remplir tous les champs obligatoires."
	MsgInvalidEmail  = "Veuillez entrer une adresse email valide."
	MsgSendFailed    = "Une erreur est survenue lors de l'envoi du message. Veuillez réessayer."
	MsgSent          = "Message envoyé avec succès ! Je vous répondrai bientôt."
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Notifier invokes the contact-email relay for one persisted submission.
type Notifier interface {
	Notify(ctx context.Context, req notify.Request) error
}

type contactUsecase struct {
	repo     domain.ContactMessageRepository
	notifier Notifier
}

// NewContactUsecase creates the contact submission pipeline
func NewContactUsecase(repo domain.ContactMessageRepository, notifier Notifier) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		notifier: notifier,
	}
}

// Submit validates the form, persists it, then invokes the relay.
// Checks run in order and the first failure wins: required fields, then
// email shape. Nothing is persisted on a validation failure.
func (uc *contactUsecase) Submit(ctx context.Context, form *domain.ContactSubmission) (*domain.ContactMessage, error) {
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return nil, apperror.BadRequest(MsgMissingFields)
	}
	if !emailRegex.MatchString(form.Email) {
		return nil, apperror.BadRequest(MsgInvalidEmail)
	}

	msg := &domain.ContactMessage{
		Name:        form.Name,
		Email:       form.Email,
		Subject:     nullIfEmpty(form.Subject),
		Message:     form.Message,
		ServiceType: nullIfEmpty(form.ServiceType),
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		logger.Log.Error("Failed to store contact message", "error", err)
		return nil, apperror.New(http.StatusInternalServerError, MsgSendFailed, err)
	}

	// Best-effort: the row is already durable, so a relay failure is logged
	// and swallowed rather than turning the submission into an error.
	if err := uc.notifier.Notify(ctx, notify.Request{
		Name:        msg.Name,
		Email:       msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Message,
		ServiceType: msg.ServiceType,
	}); err != nil {
		logger.Log.Error("contact-email relay call failed", "error", err)
	}

	return msg, nil
}

// nullIfEmpty maps the form's "" optionals to NULL so the store never holds
// empty strings.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
