package handler

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"entryapi/internal/http/middleware"
)

// errorResponse is the error body shape for the submission API.
// Error carries internal diagnostic detail and is populated only when the
// service runs outside production mode.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
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

// writeClientError writes a 400 with a safe, human-readable message.
func writeClientError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: message})
}

// writeServerError writes a 500. The underlying error is attached to the body
// only when exposeDetail is true; it is always logged.
func writeServerError(c *fiber.Ctx, stage, message string, err error, exposeDetail bool) error {
	logFailure(c, stage, err)

	res := errorResponse{Message: message}
	if exposeDetail && err != nil {
		res.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(res)
}

// logFailure emits one JSON log line with enough context to diagnose a failed
// request without exposing internals to the caller.
func logFailure(c *fiber.Ctx, stage string, err error) {
	entry := map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"msg":        "request_failed",
		"request_id": requestIDFromCtx(c),
		"path":       c.Path(),
		"stage":      stage,
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	if b, mErr := json.Marshal(entry); mErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for anything not handled by a route (bad routes, body limits).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return c.Status(status).JSON(errorResponse{Message: "Bad request."})
		case fiber.StatusNotFound:
			return c.Status(status).JSON(errorResponse{Message: "Resource not found."})
		case fiber.StatusMethodNotAllowed:
			return c.Status(status).JSON(errorResponse{Message: "Method not allowed."})
		default:
			return c.Status(status).JSON(errorResponse{Message: "Internal server error."})
		}
	}
}
