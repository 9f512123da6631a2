package middleware

import (
	"go-portfolio-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an id so responses and logs can be
// correlated. An inbound X-Request-ID is kept when the caller provides one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
