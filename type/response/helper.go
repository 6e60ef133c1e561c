package response

import "github.com/gofiber/fiber/v2"

func SendNotified(c *fiber.Ctx, results []DispatchResult) error {
	return c.Status(fiber.StatusOK).JSON(Notified(results))
}

func SendFailed(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error(msg))
}

func SendMethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(Error("Method not allowed"))
}

func SendError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Error(msg))
}

func SendInternalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Error(err))
}
