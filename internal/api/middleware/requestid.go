package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header used to propagate the request ID.
const HeaderRequestID = "X-Request-ID"

// ContextRequestID is the gin context key holding the request ID.
const ContextRequestID = "request_id"

// RequestID attaches a unique ID to every request for log correlation.
// An ID supplied by the caller is kept, otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
