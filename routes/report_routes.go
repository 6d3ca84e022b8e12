package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports", middleware.Protected())
	reports.Get("/payments", handlers.GetPaymentReport)
	reports.Get("/payments/print", handlers.PrintPaymentReport)
}
