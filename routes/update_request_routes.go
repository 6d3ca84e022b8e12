package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/fiber/v2"
)

func UpdateRequestRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Student self-service: public, keyed by student number only.
	api.Get("/update-request/students/:studentNumber", handlers.LookupStudent)
	api.Post("/update-request", handlers.SubmitUpdateRequest)

	admin := api.Group("/admin", middleware.Protected())
	admin.Get("/update-requests", handlers.ListUpdateRequests)
	admin.Put("/update-requests/:requestId", handlers.ProcessUpdateRequest)
}
