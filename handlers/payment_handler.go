package handlers

import (
	"time"

	"github.com/Chell2003/payment-nexus-dashboard/cache"
	"github.com/Chell2003/payment-nexus-dashboard/database"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/Chell2003/payment-nexus-dashboard/services"
	"github.com/Chell2003/payment-nexus-dashboard/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaymentRequest struct {
	StudentID   string   `json:"student_id" validate:"required,uuid4"`
	AmountPaid  *float64 `json:"amount_paid" validate:"required,gte=0"`
	PaymentDate string   `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

func cachedPayments() ([]models.Payment, error) {
	v, err := cache.Queries.Fetch(cache.KeyPayments, func() (any, error) {
		var payments []models.Payment
		if err := database.DB.Preload("Student").Order("created_at desc").Find(&payments).Error; err != nil {
			return nil, err
		}
		return payments, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Payment), nil
}

// ListPayments returns every payment joined with its student, newest first.
func ListPayments(c *fiber.Ctx) error {
	payments, err := cachedPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

func CreatePayment(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var student models.Student
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		paymentDate, _ = time.Parse("2006-01-02", req.PaymentDate)
	}

	payment := models.Payment{
		StudentID:   studentID,
		AmountPaid:  *req.AmountPaid,
		PaymentDate: paymentDate,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}
	payment.Student = student

	cache.Queries.Invalidate(cache.KeyPayments)
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func DeletePayment(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	result := database.DB.Delete(&models.Payment{}, "id = ?", paymentID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	cache.Queries.Invalidate(cache.KeyPayments)
	return c.SendStatus(fiber.StatusNoContent)
}

// PaymentReceipt renders the printable receipt document for one payment.
func PaymentReceipt(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")

	var payment models.Payment
	if err := database.DB.Preload("Student").Where("id = ?", paymentID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	html, err := services.RenderReceiptHTML(payment, utils.GenerateReceiptNumber())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render receipt"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ArchivePaymentReceipt renders the receipt to PDF and uploads it, returning
// the hosted URL of the archived document.
func ArchivePaymentReceipt(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")

	var payment models.Payment
	if err := database.DB.Preload("Student").Where("id = ?", paymentID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	url, err := services.ArchiveReceipt(payment, utils.GenerateReceiptNumber())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to archive receipt"})
	}

	return c.JSON(fiber.Map{"receipt_url": url})
}
