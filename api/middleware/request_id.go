package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDKey = "requestid"

// RequestID tags every request and response with an X-Request-Id, reusing
// the caller's value when one is supplied.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}
