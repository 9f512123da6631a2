package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubContactUC struct {
	msg *domain.ContactMessage
	err error
}

func (s *stubContactUC) Submit(ctx context.Context, form *domain.ContactSubmission) (*domain.ContactMessage, error) {
	return s.msg, s.err
}

func passthrough(c *gin.Context) { c.Next() }

func newContactRouter(uc domain.ContactUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	v1.NewContactHandler(r.Group("/v1"), passthrough, uc)
	return r
}

func postContact(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactSuccessEnvelope(t *testing.T) {
	subject := "Devis"
	r := newContactRouter(&stubContactUC{msg: &domain.ContactMessage{
		ID:      "m-1",
		Name:    "Marie",
		Email:   "marie@x.com",
		Subject: &subject,
		Message: "Bonjour",
	}})

	w := postContact(r, `{"name":"Marie","email":"marie@x.com","subject":"Devis","message":"Bonjour"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, usecase.MsgSent, resp.Message)
	assert.NotEmpty(t, resp.RequestID)
}

func TestSubmitContactValidationError(t *testing.T) {
	r := newContactRouter(&stubContactUC{err: apperror.BadRequest(usecase.MsgInvalidEmail)})

	w := postContact(r, `{"name":"Marie","email":"not-an-email","message":"Bonjour"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, usecase.MsgInvalidEmail, resp.Message)
}

func TestSubmitContactPersistenceError(t *testing.T) {
	r := newContactRouter(&stubContactUC{err: apperror.New(http.StatusInternalServerError, usecase.MsgSendFailed, nil)})

	w := postContact(r, `{"name":"Marie","email":"marie@x.com","message":"Bonjour"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, usecase.MsgSendFailed, resp.Message)
}

func TestSubmitContactMalformedBody(t *testing.T) {
	r := newContactRouter(&stubContactUC{})

	w := postContact(r, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
