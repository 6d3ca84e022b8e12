package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	dashboard := api.Group("/dashboard", middleware.Protected())
	dashboard.Get("/latest-payment", handlers.GetLatestPayment)
	dashboard.Get("/students-by-section", handlers.GetStudentsBySection)
	dashboard.Get("/recent-payments", handlers.GetRecentPayments)
}
