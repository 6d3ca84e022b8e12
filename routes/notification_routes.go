package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/notifications", middleware.Protected(), handlers.ListNotifications)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/notifications", websocket.New(handlers.ServeNotificationsWs))
}
