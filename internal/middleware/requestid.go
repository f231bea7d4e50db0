package middleware

import (
	"bibliomate/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id, reusing a valid incoming one.
// The id is stored in the request context for logger.For.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(logger.ContextWithID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
