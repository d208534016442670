package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerKey  = "X-Request-ID"
	contextKey = "request_id"
)

// Middleware tags every request with an id, honouring one supplied by the
// client so ids survive proxy hops. The id is echoed on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerKey)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Writer.Header().Set(headerKey, id)

		c.Next()
	}
}

// Value returns the request id stored on the context, or "" outside the
// middleware chain.
func Value(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
