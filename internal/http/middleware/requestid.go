package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader carries the correlation ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the Fiber locals key holding the ID.
	RequestIDLocalKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID propagates a caller-supplied X-Request-ID or mints a UUID.
// Oversize IDs and IDs with non-printable bytes are replaced, since the ID
// ends up in log lines and error bodies. The ID is echoed on the response
// and tagged on the active server span.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)
		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.String("request.id", id))

		return c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
