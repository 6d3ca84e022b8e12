package handlers

import (
	"strings"
	"testing"
)

func TestAuthErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "invalid credentials", code: authErrInvalidCredentials, want: "Invalid email or password. Please check your credentials."},
		{name: "expired session", code: authErrSessionExpired, want: "Your session has expired. Please sign in again."},
		{name: "rate limited", code: authErrRateLimited, want: "Too many failed sign-in attempts. Please try again later."},
		{name: "unverified email", code: authErrEmailUnverified, want: "Please verify your email address before signing in."},
		{name: "unknown code falls back", code: "something_else", want: "An authentication error occurred. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authErrorMessage(tt.code); got != tt.want {
				t.Errorf("authErrorMessage(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLoginAttemptTracking(t *testing.T) {
	email := "limit@school.test"
	clearFailedLogins(email)

	if tooManyLoginAttempts(email) {
		t.Fatal("fresh email should not be rate limited")
	}

	for i := 0; i < maxLoginAttempts-1; i++ {
		recordFailedLogin(email)
	}
	if tooManyLoginAttempts(email) {
		t.Errorf("should not be rate limited below %d attempts", maxLoginAttempts)
	}

	recordFailedLogin(email)
	if !tooManyLoginAttempts(email) {
		t.Errorf("should be rate limited at %d attempts", maxLoginAttempts)
	}

	clearFailedLogins(email)
	if tooManyLoginAttempts(email) {
		t.Error("clearing attempts should lift the rate limit")
	}
}

func TestStudentNotFoundMessageIsSpecific(t *testing.T) {
	// "No such student" must read as its own condition, not a generic failure.
	if !strings.Contains(studentNotFoundMessage, "student number") {
		t.Errorf("lookup message %q should mention the student number", studentNotFoundMessage)
	}
}
