package routes

import (
	"github.com/Chell2003/payment-nexus-dashboard/handlers"
	"github.com/Chell2003/payment-nexus-dashboard/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Get("", handlers.ListPayments)
	payments.Post("", handlers.CreatePayment)
	payments.Delete("/:paymentId", handlers.DeletePayment)
	payments.Get("/:paymentId/receipt", handlers.PaymentReceipt)
	payments.Post("/:paymentId/receipt/archive", handlers.ArchivePaymentReceipt)
}
