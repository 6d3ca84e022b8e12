package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Validation failures are rejected before any store access, so these paths
// are exercised against a bare app with no database behind it.
func newValidationTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/update-request", SubmitUpdateRequest)
	app.Post("/payments", CreatePayment)
	app.Post("/students", CreateStudent)
	app.Post("/login", Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestValidationRejectsBeforeStore(t *testing.T) {
	app := newValidationTestApp()

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "submit without student number", path: "/update-request", body: `{"name":"Ann"}`},
		{name: "submit with invalid email", path: "/update-request", body: `{"student_number":"001","email":"not-an-email"}`},
		{name: "payment without amount", path: "/payments", body: `{"student_id":"8b7f9a4e-2a7e-4f8e-9a1b-123456789abc"}`},
		{name: "payment with malformed student id", path: "/payments", body: `{"student_id":"42","amount_paid":100}`},
		{name: "payment with malformed date", path: "/payments", body: `{"student_id":"8b7f9a4e-2a7e-4f8e-9a1b-123456789abc","amount_paid":100,"payment_date":"15-06-2025"}`},
		{name: "student without name", path: "/students", body: `{"student_number":"001"}`},
		{name: "student without number", path: "/students", body: `{"name":"Ann"}`},
		{name: "login without password", path: "/login", body: `{"email":"admin@school.test"}`},
		{name: "login with invalid email", path: "/login", body: `{"email":"nope","password":"secret"}`},
		{name: "unparseable body", path: "/students", body: `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := postJSON(t, app, tt.path, tt.body); code != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", code, fiber.StatusBadRequest)
			}
		})
	}
}
