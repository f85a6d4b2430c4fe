package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// TraceIDKey is the fiber.Ctx locals key holding the request trace ID.
	TraceIDKey = "trace_id"
	// TraceIDHeader echoes the trace ID back to the client.
	TraceIDHeader = "X-Trace-ID"
)

// TraceID assigns a UUID to every request.
func TraceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := uuid.New().String()
		c.Locals(TraceIDKey, traceID)
		c.Set(TraceIDHeader, traceID)
		return c.Next()
	}
}

// GetTraceID returns the request trace ID, or "" outside TraceID.
func GetTraceID(c *fiber.Ctx) string {
	id, _ := c.Locals(TraceIDKey).(string)
	return id
}
