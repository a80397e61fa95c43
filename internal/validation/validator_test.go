package validation

import (
	"testing"

	"task-list/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "Stand-up", true},
		{"String with leading/trailing spaces", "  Retro  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinMaxLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Unlimited", "a very long title indeed", 0, true},
		{"Exactly max", "hello", 5, true},
		{"Too long", "hello!", 5, false},
		{"Trimmed before counting", "  hello  ", 5, true},
		{"Counts runes not bytes", "héllo", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsWithinMaxLength(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("IsWithinMaxLength(%q, %d) = %v, expected %v", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_TitleMaxLength(t *testing.T) {
	if got := NewValidator().TitleMaxLength(); got != 0 {
		t.Errorf("default TitleMaxLength = %d, want 0", got)
	}

	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 40
	if got := NewValidatorWithConfig(cfg).TitleMaxLength(); got != 40 {
		t.Errorf("configured TitleMaxLength = %d, want 40", got)
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()
	if got := validator.TrimAndValidateString("  Interview \n"); got != "Interview" {
		t.Errorf("TrimAndValidateString = %q, want %q", got, "Interview")
	}
}
