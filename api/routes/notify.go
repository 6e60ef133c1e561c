package routes

import (
	"github.com/gofiber/fiber/v2"
	notify_controller "github.com/sunthewhat/quote-notify-api/api/controllers/notify"
)

func SetupNotifyRoutes(router fiber.Router, ctrl *notify_controller.NotifyController) {
	router.Post("notify", ctrl.Notify)
	router.Options("notify", ctrl.Preflight)
	// Registered last so every other method on the path is rejected.
	router.All("notify", ctrl.MethodNotAllowed)
}
