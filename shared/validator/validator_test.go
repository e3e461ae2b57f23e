package validator_test

import (
	"strings"
	"testing"
	"todos/shared/validator"
)

type completedRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type nameRequest struct {
	Name string `json:"name" validate:"trimlen=1-100"`
}

func TestValidateVarTrimmedLength(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		expectError bool
	}{
		{
			name:        "single character",
			field:       "a",
			expectError: false,
		},
		{
			name:        "surrounding whitespace is ignored",
			field:       "   Groceries   ",
			expectError: false,
		},
		{
			name:        "exactly one hundred characters",
			field:       strings.Repeat("x", 100),
			expectError: false,
		},
		{
			name:        "multibyte characters count once",
			field:       strings.Repeat("é", 100),
			expectError: false,
		},
		{
			name:        "empty",
			field:       "",
			expectError: true,
		},
		{
			name:        "only whitespace",
			field:       " \t\n ",
			expectError: true,
		},
		{
			name:        "one hundred and one characters",
			field:       strings.Repeat("x", 101),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, "trimlen=1-100")
			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	done := true

	if err := validator.ValidateStruct(&completedRequest{Completed: &done}); err != nil {
		t.Errorf("expected no validation error, got: %v", err)
	}

	err := validator.ValidateStruct(&completedRequest{})
	if err == nil {
		t.Fatal("expected validation error for missing completed flag")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Groceries"}`,
			expectError: false,
		},
		{
			name:        "name too long",
			jsonBody:    `{"name":"` + strings.Repeat("a", 101) + `"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data nameRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)
			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	err := validator.ValidateStruct(&completedRequest{})
	if err == nil || err.Error() != "completed is required" {
		t.Errorf("expected 'completed is required', got: %v", err)
	}

	err = validator.ValidateStruct(&nameRequest{Name: " "})
	if err == nil || err.Error() != "name must be 1 - 100 characters" {
		t.Errorf("expected 'name must be 1 - 100 characters', got: %v", err)
	}
}
