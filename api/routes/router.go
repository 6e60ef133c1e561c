package routes

import (
	"github.com/gofiber/fiber/v2"
	notify_controller "github.com/sunthewhat/quote-notify-api/api/controllers/notify"
)

func Init(router fiber.Router, notifyCtrl *notify_controller.NotifyController) {
	api := router.Group("api")

	SetupNotifyRoutes(api, notifyCtrl)
}
