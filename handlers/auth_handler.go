package handlers

import (
	"sync"
	"time"

	config "github.com/Chell2003/payment-nexus-dashboard/configs"
	"github.com/Chell2003/payment-nexus-dashboard/database"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// Auth failure codes, mapped to user-facing messages by authErrorMessage.
const (
	authErrInvalidCredentials = "invalid_credentials"
	authErrSessionExpired     = "session_expired"
	authErrRateLimited        = "rate_limited"
	authErrEmailUnverified    = "email_unverified"
)

var authErrorMessages = map[string]string{
	authErrInvalidCredentials: "Invalid email or password. Please check your credentials.",
	authErrSessionExpired:     "Your session has expired. Please sign in again.",
	authErrRateLimited:        "Too many failed sign-in attempts. Please try again later.",
	authErrEmailUnverified:    "Please verify your email address before signing in.",
}

func authErrorMessage(code string) string {
	if msg, ok := authErrorMessages[code]; ok {
		return msg
	}
	return "An authentication error occurred. Please try again."
}

const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

var loginAttemptsMu sync.Mutex
var loginAttempts = make(map[string][]time.Time)

func tooManyLoginAttempts(email string) bool {
	loginAttemptsMu.Lock()
	defer loginAttemptsMu.Unlock()

	cutoff := time.Now().Add(-loginAttemptWindow)
	recent := loginAttempts[email][:0]
	for _, at := range loginAttempts[email] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	loginAttempts[email] = recent
	return len(recent) >= maxLoginAttempts
}

func recordFailedLogin(email string) {
	loginAttemptsMu.Lock()
	loginAttempts[email] = append(loginAttempts[email], time.Now())
	loginAttemptsMu.Unlock()
}

func clearFailedLogins(email string) {
	loginAttemptsMu.Lock()
	delete(loginAttempts, email)
	loginAttemptsMu.Unlock()
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if tooManyLoginAttempts(req.Email) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": authErrorMessage(authErrRateLimited)})
	}

	var admin models.Admin
	result := database.DB.Where("email = ?", req.Email).First(&admin)
	if result.Error != nil {
		recordFailedLogin(req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": authErrorMessage(authErrInvalidCredentials)})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		recordFailedLogin(req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": authErrorMessage(authErrInvalidCredentials)})
	}

	clearFailedLogins(req.Email)

	claims := jwt.MapClaims{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
		"name":     admin.Name,
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"token": t,
		"admin": fiber.Map{
			"id":    admin.ID.String(),
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

// Session answers "current session or none" for the protected shell.
func Session(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	return c.JSON(fiber.Map{
		"admin": fiber.Map{
			"id":    claims["admin_id"],
			"name":  claims["name"],
			"email": claims["email"],
		},
	})
}

// Logout is stateless; the token simply stops being presented by the client.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Signed out successfully"})
}
