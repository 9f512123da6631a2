package domain

import (
	"context"
	"time"
)

// TestimonialSubmission is the visitor-facing testimonial form. Field order
// matters: validation reports the first failing field.
type TestimonialSubmission struct {
	AuthorName string `json:"author_name" validate:"notblank"`
	AuthorRole string `json:"author_role"`
	Content    string `json:"content" validate:"notblank,trimmed_min=20"`
}

// Testimonial is the persisted row in testimonials.
type Testimonial struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	AuthorRole *string   `json:"author_role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type TestimonialRepository interface {
	// Create inserts the testimonial and fills in ID and CreatedAt.
	Create(ctx context.Context, t *Testimonial) error
	Fetch(ctx context.Context) ([]Testimonial, error)
}

type TestimonialUsecase interface {
	// Submit returns the persisted record so the client can prepend it
	// to its list without a re-fetch.
	Submit(ctx context.Context, form *TestimonialSubmission) (*Testimonial, error)
	List(ctx context.Context) ([]Testimonial, error)
}
