package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Logger is a middleware that logs each HTTP request as one JSON line.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
//
// A child logger carrying request_id is attached to the request's user
// context, so zerolog.Ctx works in services.
func Logger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLogger := base.With().Str("request_id", rid).Logger()
		c.SetUserContext(reqLogger.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := reqLogger.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLogger.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("request")

		return err
	}
}
