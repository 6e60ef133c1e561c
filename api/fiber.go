package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	notify_controller "github.com/sunthewhat/quote-notify-api/api/controllers/notify"
	"github.com/sunthewhat/quote-notify-api/api/handler"
	"github.com/sunthewhat/quote-notify-api/api/middleware"
	"github.com/sunthewhat/quote-notify-api/api/routes"
)

// NewApp assembles the fiber application without binding a port.
func NewApp(notifyCtrl *notify_controller.NotifyController) *fiber.App {
	cfg := fiber.Config{
		AppName:       "quote notify api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
	}
	app := fiber.New(cfg)

	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:" + middleware.RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app, notifyCtrl)

	app.Use(handler.HandleNotFound)

	return app
}

func InitFiber(app *fiber.App, port string) error {
	slog.Info("Starting server", "port", port)
	if err := app.Listen(port); err != nil {
		slog.Error("Failed to start server", "error", err)
		return err
	}
	return nil
}
