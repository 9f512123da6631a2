package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTestimonialRepo struct {
	mock.Mock
}

func (m *MockTestimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTestimonialRepo) Fetch(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestTestimonialValidationRejectsBeforePersistence(t *testing.T) {
	tests := []struct {
		name    string
		form    domain.TestimonialSubmission
		wantMsg string
	}{
		{"blank author", domain.TestimonialSubmission{AuthorName: "   ", Content: "Une collaboration excellente du début à la fin."}, "Le champ Nom est obligatoire."},
		{"empty content", domain.TestimonialSubmission{AuthorName: "Luc", Content: ""}, "Le champ Témoignage est obligatoire."},
		{"content too short", domain.TestimonialSubmission{AuthorName: "Luc", Content: "Trop court."}, "Le champ Témoignage doit contenir au moins 20 caractères."},
		{"padding does not count", domain.TestimonialSubmission{AuthorName: "Luc", Content: "   court            "}, "Le champ Témoignage doit contenir au moins 20 caractères."},
		{"author reported first", domain.TestimonialSubmission{AuthorName: "", Content: "court"}, "Le champ Nom est obligatoire."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTestimonialRepo)
			uc := usecase.NewTestimonialUsecase(repo, newValidate())

			created, err := uc.Submit(context.Background(), &tt.form)

			assert.Nil(t, created)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestTestimonialSubmitReturnsPersistedRecord(t *testing.T) {
	repo := new(MockTestimonialRepo)
	uc := usecase.NewTestimonialUsecase(repo, newValidate())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Testimonial")).
		Run(func(args mock.Arguments) {
			rec := args.Get(1).(*domain.Testimonial)
			rec.ID = "t-1"
			rec.CreatedAt = time.Now()
		}).Return(nil)

	created, err := uc.Submit(context.Background(), &domain.TestimonialSubmission{
		AuthorName: "  Luc  ",
		AuthorRole: "",
		Content:    "  Une collaboration excellente du début à la fin.  ",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "t-1", created.ID)
	assert.Equal(t, "Luc", created.AuthorName)
	assert.Nil(t, created.AuthorRole)
	assert.Equal(t, "Une collaboration excellente du début à la fin.", created.Content)
}

func TestTestimonialSubmitPersistenceFailure(t *testing.T) {
	repo := new(MockTestimonialRepo)
	uc := usecase.NewTestimonialUsecase(repo, newValidate())

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	created, err := uc.Submit(context.Background(), &domain.TestimonialSubmission{
		AuthorName: "Luc",
		Content:    "Une collaboration excellente du début à la fin.",
	})

	assert.Nil(t, created)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, usecase.MsgTestimonialFailed, appErr.Message)
}

func TestTestimonialList(t *testing.T) {
	repo := new(MockTestimonialRepo)
	uc := usecase.NewTestimonialUsecase(repo, newValidate())

	repo.On("Fetch", mock.Anything).Return([]domain.Testimonial{
		{ID: "t-2", AuthorName: "Anna", Content: "Très professionnel, je recommande sans hésiter."},
		{ID: "t-1", AuthorName: "Luc", Content: "Une collaboration excellente du début à la fin."},
	}, nil)

	testimonials, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, testimonials, 2)
	// Repository order (newest first) is preserved
	assert.Equal(t, "t-2", testimonials[0].ID)
}
