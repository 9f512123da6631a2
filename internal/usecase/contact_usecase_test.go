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
	"go-portfolio-backend/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, req notify.Request) error {
	return m.Called(ctx, req).Error(0)
}

func TestContactValidationRejectsBeforePersistence(t *testing.T) {
	tests := []struct {
		name    string
		form    domain.ContactSubmission
		wantMsg string
	}{
		{"missing name", domain.ContactSubmission{Email: "marie@x.com", Message: "Bonjour"}, usecase.MsgMissingFields},
		{"missing email", domain.ContactSubmission{Name: "Marie", Message: "Bonjour"}, usecase.MsgMissingFields},
		{"missing message", domain.ContactSubmission{Name: "Marie", Email: "marie@x.com"}, usecase.MsgMissingFields},
		{"not an email", domain.ContactSubmission{Name: "Marie", Email: "not-an-email", Message: "Bonjour"}, usecase.MsgInvalidEmail},
		{"email without tld", domain.ContactSubmission{Name: "Marie", Email: "marie@x", Message: "Bonjour"}, usecase.MsgInvalidEmail},
		{"email with space", domain.ContactSubmission{Name: "Marie", Email: "ma rie@x.com", Message: "Bonjour"}, usecase.MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockContactRepo)
			notifier := new(MockNotifier)
			uc := usecase.NewContactUsecase(repo, notifier)

			msg, err := uc.Submit(context.Background(), &tt.form)

			assert.Nil(t, msg)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			repo.AssertNotCalled(t, "Create")
			notifier.AssertNotCalled(t, "Notify")
		})
	}
}

func TestContactSubmitNormalizesOptionalsToNull(t *testing.T) {
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewContactUsecase(repo, notifier)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).
		Run(func(args mock.Arguments) {
			msg := args.Get(1).(*domain.ContactMessage)
			assert.Nil(t, msg.Subject)
			assert.Nil(t, msg.ServiceType)
			// Server-assigned identity
			msg.ID = "m-1"
			msg.CreatedAt = time.Now()
		}).Return(nil)

	var sent notify.Request
	notifier.On("Notify", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(notify.Request)
		}).Return(nil)

	msg, err := uc.Submit(context.Background(), &domain.ContactSubmission{
		Name:        "Marie",
		Email:       "marie@x.com",
		Subject:     "",
		Message:     "Bonjour",
		ServiceType: "",
	})

	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "m-1", msg.ID)
	assert.Nil(t, msg.Subject)
	assert.Nil(t, msg.ServiceType)

	// The projection sent to the relay carries the same nulls
	notifier.AssertNumberOfCalls(t, "Notify", 1)
	assert.Equal(t, "Marie", sent.Name)
	assert.Equal(t, "marie@x.com", sent.Email)
	assert.Nil(t, sent.Subject)
	assert.Nil(t, sent.ServiceType)
	assert.Equal(t, "Bonjour", sent.Message)
}

func TestContactSubmitKeepsNonEmptyOptionals(t *testing.T) {
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewContactUsecase(repo, notifier)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

	msg, err := uc.Submit(context.Background(), &domain.ContactSubmission{
		Name:        "Marie",
		Email:       "marie@x.com",
		Subject:     "Devis",
		Message:     "Bonjour",
		ServiceType: "developpement-backend",
	})

	require.NoError(t, err)
	require.NotNil(t, msg.Subject)
	assert.Equal(t, "Devis", *msg.Subject)
	require.NotNil(t, msg.ServiceType)
	assert.Equal(t, "developpement-backend", *msg.ServiceType)
}

func TestContactNotificationFailureDoesNotAffectSuccess(t *testing.T) {
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewContactUsecase(repo, notifier)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("relay unreachable"))

	msg, err := uc.Submit(context.Background(), &domain.ContactSubmission{
		Name:    "Marie",
		Email:   "marie@x.com",
		Message: "Bonjour",
	})

	// The row is durable; the relay failure stays invisible to the user
	require.NoError(t, err)
	assert.NotNil(t, msg)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestContactPersistenceFailureSkipsNotification(t *testing.T) {
	repo := new(MockContactRepo)
	notifier := new(MockNotifier)
	uc := usecase.NewContactUsecase(repo, notifier)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	msg, err := uc.Submit(context.Background(), &domain.ContactSubmission{
		Name:    "Marie",
		Email:   "marie@x.com",
		Message: "Bonjour",
	})

	assert.Nil(t, msg)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, usecase.MsgSendFailed, appErr.Message)
	notifier.AssertNotCalled(t, "Notify")
}
