package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/quote-notify-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	slog.Error("Unhandled request error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
