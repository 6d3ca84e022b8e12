package handlers

import (
	"github.com/Chell2003/payment-nexus-dashboard/services"
	"github.com/gofiber/fiber/v2"
)

// GetPaymentReport returns the joined payment rows, text-filtered, plus the
// grand total. The total is computed over the unfiltered set: filtering the
// rows never changes the amount collected.
func GetPaymentReport(c *fiber.Ctx) error {
	payments, err := cachedPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	total := services.TotalAmount(payments)
	filtered := services.FilterPayments(payments, c.Query("search"))

	return c.JSON(fiber.Map{
		"payments":     filtered,
		"total_amount": total,
	})
}

// PrintPaymentReport renders the printable payment collection report.
func PrintPaymentReport(c *fiber.Ctx) error {
	payments, err := cachedPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	html, err := services.RenderReportHTML(payments)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render report"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
