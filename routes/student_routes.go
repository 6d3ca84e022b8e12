package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.ListStudents)
	students.Post("", handlers.CreateStudent)
	students.Put("/:studentId", handlers.UpdateStudent)
	students.Delete("/:studentId", handlers.DeleteStudent)
}
