package relay

import (
	"net/http"

	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler relays one contact submission per request to the email provider.
// It is stateless: concurrent invocations share nothing but the sender.
type Handler struct {
	sender EmailSender
}

func NewHandler(sender EmailSender) *Handler {
	return &Handler{sender: sender}
}

// NewRouter mounts the relay on a wildcard route, preflight included, the way
// the function runs when deployed standalone.
func NewRouter(sender EmailSender) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := NewHandler(sender)
	r.OPTIONS("/*any", h.Preflight)
	r.POST("/*any", h.Relay)

	return r
}

// Any origin may call the relay directly; responses are plain text.
func corsHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
}

func (h *Handler) Preflight(c *gin.Context) {
	corsHeaders(c)
	c.String(http.StatusOK, "ok")
}

// Relay parses the submission, composes the email and performs a single send.
// Parse failures and downstream failures both map to a plain 500; the caller
// already treats the notification as best-effort.
func (h *Handler) Relay(c *gin.Context) {
	corsHeaders(c)

	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Log.Error("contact-email: invalid payload", "error", err)
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	if err := h.sender.Send(c.Request.Context(), payload.SubjectLine(), payload.TextBody()); err != nil {
		logger.Log.Error("contact-email: send failed", "error", err)
		c.String(http.StatusInternalServerError, "Email error")
		return
	}

	c.String(http.StatusOK, "OK")
}
