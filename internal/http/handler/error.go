package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"promoapi/internal/http/middleware"
	"promoapi/internal/model"
)

const genericFailureMessage = "Failed to generate tweets. Please try again."

// errorPayload defines the standardized error response body.
// Error carries the user-facing message; Code is the machine-readable kind.
type errorPayload struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_URL", "FETCH_FAILED")
// - message: human-readable message shown to the end user
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	}
	return c.Status(status).JSON(res)
}

// statusFor maps an error kind to its HTTP status. Input, fetch and content
// problems are the caller's to fix; everything else is a server failure.
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.ErrMissingURL,
		model.ErrInvalidURL,
		model.ErrInvalidBody,
		model.ErrFetchFailed,
		model.ErrInsufficientContent:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// writeDomainError converts a service error into the standardized response.
func writeDomainError(c *fiber.Ctx, err error) error {
	kind := model.ErrorKindOf(err)
	msg := model.ErrorMessage(err)
	if msg == "" {
		msg = genericFailureMessage
	}
	return writeError(c, statusFor(kind), string(kind), msg)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "REQUEST_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, string(model.ErrUnexpected), genericFailureMessage)
		}
	}
}
