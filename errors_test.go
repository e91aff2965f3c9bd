package jira

import (
	"errors"
	"testing"
)

func TestExtractErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"empty", "", "(empty error body)"},
		{"whitespace", "  \n", "(empty error body)"},
		{"plain text", "Bad Request", "Bad Request"},
		{"error messages", `{"errorMessages":["first","second"]}`, "first; second"},
		{"field errors", `{"errorMessages":[],"errors":{"summary":"required"}}`, "summary: required"},
		{"error field", `{"error": "validation failed"}`, "validation failed"},
		{"message field", `{"message": "something went wrong"}`, "something went wrong"},
		{"unknown json", `{"status": "bad"}`, `{"status": "bad"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := extractErrorMessage([]byte(tt.body)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMissingConfigError(t *testing.T) {
	t.Parallel()

	err := error(&MissingConfigError{Key: PasswordKey})

	if !errors.Is(err, ErrMissingConfig) {
		t.Error("expected MissingConfigError to match ErrMissingConfig")
	}

	if err.Error() != "missing configuration: ALLURE_JIRA_PASSWORD is not set" {
		t.Errorf("unexpected message: %v", err)
	}
}
