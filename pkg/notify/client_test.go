package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-portfolio-backend/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyPostsExplicitNulls(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := notify.NewClient(srv.URL)
	err := c.Notify(context.Background(), notify.Request{
		Name:    "Marie",
		Email:   "marie@x.com",
		Message: "Bonjour",
	})

	require.NoError(t, err)
	assert.Equal(t, "Marie", got["name"])

	// Optionals travel as null, never as "" and never omitted
	subject, ok := got["subject"]
	require.True(t, ok)
	assert.Nil(t, subject)
	serviceType, ok := got["service_type"]
	require.True(t, ok)
	assert.Nil(t, serviceType)
}

func TestNotifyRelayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Email error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := notify.NewClient(srv.URL)
	err := c.Notify(context.Background(), notify.Request{Name: "Marie", Email: "marie@x.com", Message: "Bonjour"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Email error")
}

func TestNotifyUnreachableRelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // dead endpoint

	c := notify.NewClient(srv.URL)
	err := c.Notify(context.Background(), notify.Request{Name: "Marie", Email: "marie@x.com", Message: "Bonjour"})

	require.Error(t, err)
}
