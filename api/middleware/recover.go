package middleware

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recover turns handler panics into errors so they reach the error handler
// and are reported with the usual envelope.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			slog.Error("Recovered from panic", "method", c.Method(), "path", c.Path(), "panic", fmt.Sprint(e))
		},
	})
}
