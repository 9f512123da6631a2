package domain

import (
	"context"
	"time"
)

// ContactSubmission is one contact-form submission exactly as the visitor
// entered it. Empty optionals stay "" here; normalization to NULL happens
// in the usecase, never at the transport boundary.
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	ServiceType string `json:"serviceType"`
}

// ContactMessage is the persisted row in contact_messages. Identity and
// timestamp are server-assigned on insert.
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     *string   `json:"subject"`
	Message     string    `json:"message"`
	ServiceType *string   `json:"service_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactMessageRepository interface {
	// Create inserts the message and fills in ID and CreatedAt.
	Create(ctx context.Context, msg *ContactMessage) error
}

// ContactUsecase defines the contact submission pipeline
type ContactUsecase interface {
	// Submit validates, persists and best-effort notifies one submission
	Submit(ctx context.Context, form *ContactSubmission) (*ContactMessage, error)
}
