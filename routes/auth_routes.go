package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", middleware.Protected(), handlers.Logout)
	auth.Get("/session", middleware.Protected(), handlers.Session)
}
