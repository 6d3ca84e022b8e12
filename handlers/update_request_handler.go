package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Chell2003/payment-nexus-dashboard/cache"
	"github.com/Chell2003/payment-nexus-dashboard/database"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/Chell2003/payment-nexus-dashboard/notifications"
	"github.com/Chell2003/payment-nexus-dashboard/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const studentNotFoundMessage = "Student not found. Please check your student number."

type SubmitUpdateRequestBody struct {
	StudentNumber  string `json:"student_number" validate:"required"`
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	YearAndSection string `json:"yearandsection"`
}

type DecisionRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"admin_notes"`
}

func findStudentByNumber(number string) (models.Student, error) {
	var student models.Student
	err := database.DB.Where("student_number = ?", number).First(&student).Error
	return student, err
}

// diffField returns nil when the submitted value is empty or identical to the
// student's current value, so a persisted request records only real changes.
func diffField(submitted string, current *string) *string {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return nil
	}
	if current != nil && submitted == *current {
		return nil
	}
	return &submitted
}

func diffRequestedFields(student models.Student, body SubmitUpdateRequestBody) models.StudentUpdateRequest {
	return models.StudentUpdateRequest{
		StudentID:               student.ID,
		RequestedName:           diffField(body.Name, student.Name),
		RequestedEmail:          diffField(body.Email, student.Email),
		RequestedPhone:          diffField(body.Phone, student.Phone),
		RequestedYearAndSection: diffField(body.YearAndSection, student.YearAndSection),
		Status:                  models.RequestStatusPending,
		RequestDate:             time.Now(),
	}
}

// LookupStudent resolves a student number for the public self-service form.
// "No such student" is reported distinctly from a store failure.
func LookupStudent(c *fiber.Ctx) error {
	studentNumber := c.Params("studentNumber")
	if strings.TrimSpace(studentNumber) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student number is required"})
	}

	student, err := findStudentByNumber(studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": studentNotFoundMessage})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(student)
}

// SubmitUpdateRequest resolves the student number first so the persisted
// request always references a real student id, never the raw number.
func SubmitUpdateRequest(c *fiber.Ctx) error {
	var body SubmitUpdateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := findStudentByNumber(body.StudentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": studentNotFoundMessage})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	request := diffRequestedFields(student, body)
	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit update request"})
	}
	request.Student = student

	cache.Queries.Invalidate(cache.KeyUpdateRequests)
	websocket.Broadcast <- &request

	return c.Status(fiber.StatusCreated).JSON(request)
}

func cachedUpdateRequests() ([]models.StudentUpdateRequest, error) {
	v, err := cache.Queries.Fetch(cache.KeyUpdateRequests, func() (any, error) {
		var requests []models.StudentUpdateRequest
		if err := database.DB.Preload("Student").Order("created_at desc").Find(&requests).Error; err != nil {
			return nil, err
		}
		return requests, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.StudentUpdateRequest), nil
}

// ListUpdateRequests returns every request joined with its student, newest
// first. A request whose four fields are all null is still a valid row.
func ListUpdateRequests(c *fiber.Ctx) error {
	requests, err := cachedUpdateRequests()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch update requests"})
	}
	return c.JSON(requests)
}

// ProcessUpdateRequest applies an admin decision to a pending request.
// Approval copies each non-null requested field onto the student record in
// one transaction; null fields are left untouched.
func ProcessUpdateRequest(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var request models.StudentUpdateRequest
	if err := database.DB.Preload("Student").Where("id = ?", requestID).First(&request).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Update request not found"})
	}
	if request.Status != models.RequestStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Request has already been processed"})
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		request.Status = req.Status
		request.ProcessedAt = &now
		if strings.TrimSpace(req.AdminNotes) != "" {
			request.AdminNotes = &req.AdminNotes
		}
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		if req.Status == models.RequestStatusApproved {
			student := request.Student
			if request.RequestedName != nil {
				student.Name = request.RequestedName
			}
			if request.RequestedEmail != nil {
				student.Email = request.RequestedEmail
			}
			if request.RequestedPhone != nil {
				student.Phone = request.RequestedPhone
			}
			if request.RequestedYearAndSection != nil {
				student.YearAndSection = request.RequestedYearAndSection
			}
			if err := tx.Save(&student).Error; err != nil {
				return err
			}
			request.Student = student
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process update request"})
	}

	cache.Queries.Invalidate(cache.KeyUpdateRequests, cache.KeyStudents)

	if request.Student.Email != nil {
		subject := "Update on Your Information Change Request"
		var body string
		if req.Status == models.RequestStatusApproved {
			body = "<h1>Request Approved</h1><p>Your requested information changes have been applied to your student record.</p>"
		} else {
			body = "<h1>Request Rejected</h1><p>Your information change request was not approved. Please contact the registrar for details.</p>"
		}
		go notifications.SendEmail(strVal(request.Student.Name), *request.Student.Email, subject, body)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Update request %s successfully", req.Status),
		"request": request,
	})
}
