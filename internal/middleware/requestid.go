package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const requestIDKey = "request_id"

const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request an identifier, reusing the one from the
// incoming header when the client supplies it.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the identifier assigned by RequestID.
func RequestIDFrom(c *ginext.Context) string {
	v, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
