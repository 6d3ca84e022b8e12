package handlers

import (
	"strings"

	"github.com/Chell2003/payment-nexus-dashboard/cache"
	"github.com/Chell2003/payment-nexus-dashboard/database"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/gofiber/fiber/v2"
)

type StudentRequest struct {
	StudentNumber  string `json:"student_number" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	YearAndSection string `json:"yearandsection"`
}

func cachedStudents() ([]models.Student, error) {
	v, err := cache.Queries.Fetch(cache.KeyStudents, func() (any, error) {
		var students []models.Student
		if err := database.DB.Order("created_at desc").Find(&students).Error; err != nil {
			return nil, err
		}
		return students, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Student), nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalStr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// matchesStudentFilter applies the list screen's filter: case-insensitive
// substring match on name, student number and email, combined with an exact
// match on the section selector ("all" or empty selects every section).
func matchesStudentFilter(student models.Student, search, section string) bool {
	if section != "" && section != "all" && strVal(student.YearAndSection) != section {
		return false
	}
	if search == "" {
		return true
	}
	query := strings.ToLower(search)
	return strings.Contains(strings.ToLower(strVal(student.Name)), query) ||
		strings.Contains(strings.ToLower(strVal(student.StudentNumber)), query) ||
		strings.Contains(strings.ToLower(strVal(student.Email)), query)
}

func filterStudents(students []models.Student, search, section string) []models.Student {
	filtered := make([]models.Student, 0, len(students))
	for _, student := range students {
		if matchesStudentFilter(student, search, section) {
			filtered = append(filtered, student)
		}
	}
	return filtered
}

// ListStudents filters the cached full list in memory; changing the filter
// never triggers a new store fetch.
func ListStudents(c *fiber.Ctx) error {
	students, err := cachedStudents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	search := c.Query("search")
	section := c.Query("section")
	return c.JSON(filterStudents(students, search, section))
}

func CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student := models.Student{
		StudentNumber:  optionalStr(req.StudentNumber),
		Name:           optionalStr(req.Name),
		Email:          optionalStr(req.Email),
		Phone:          optionalStr(req.Phone),
		YearAndSection: optionalStr(req.YearAndSection),
	}
	if err := database.DB.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	cache.Queries.Invalidate(cache.KeyStudents)
	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student.StudentNumber = optionalStr(req.StudentNumber)
	student.Name = optionalStr(req.Name)
	student.Email = optionalStr(req.Email)
	student.Phone = optionalStr(req.Phone)
	student.YearAndSection = optionalStr(req.YearAndSection)
	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}

	cache.Queries.Invalidate(cache.KeyStudents)
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	result := database.DB.Delete(&models.Student{}, "id = ?", studentID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	cache.Queries.Invalidate(cache.KeyStudents)
	return c.SendStatus(fiber.StatusNoContent)
}
