package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

const recentPaymentsLimit = 10

// GetLatestPayment returns the most recent payment joined with its student,
// or null when no payment has been recorded yet.
func GetLatestPayment(c *fiber.Ctx) error {
	payments, err := cachedPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	if len(payments) == 0 {
		return c.JSON(fiber.Map{"payment": nil})
	}
	return c.JSON(fiber.Map{"payment": payments[0]})
}

// GetStudentsBySection counts students per section for the dashboard chart.
// Students without a section are grouped under "Unknown".
func GetStudentsBySection(c *fiber.Ctx) error {
	students, err := cachedStudents()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	counts := make(map[string]int)
	for _, student := range students {
		section := strVal(student.YearAndSection)
		if section == "" {
			section = "Unknown"
		}
		counts[section]++
	}

	sections := make([]SectionCount, 0, len(counts))
	for section, count := range counts {
		sections = append(sections, SectionCount{Section: section, Count: count})
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Section < sections[j].Section })

	return c.JSON(sections)
}

func GetRecentPayments(c *fiber.Ctx) error {
	payments, err := cachedPayments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	if len(payments) > recentPaymentsLimit {
		payments = payments[:recentPaymentsLimit]
	}
	return c.JSON(payments)
}
