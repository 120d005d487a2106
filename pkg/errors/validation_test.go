package errors

import (
	"strings"
	"testing"
)

func TestValidateLetters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single", "a", false},
		{"lowercase", "abc", false},
		{"mixed case", "AbC", false},
		{"repeated", "aab", false},
		{"accented", "ção", false},
		{"greek", "αβγ", false},

		{"empty", "", true},
		{"digit", "a1b", true},
		{"only digits", "123", true},
		{"space", "a b", true},
		{"leading space", " ab", true},
		{"trailing newline", "ab\n", true},
		{"punctuation", "ab!", true},
		{"dash", "a-b", true},
		{"underscore", "a_b", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLetters(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLetters(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateLetters(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateLettersSingleMessage(t *testing.T) {
	for _, input := range []string{"", "a1b", "a b", "?"} {
		if msg := UserMessage(ValidateLetters(input)); msg != MsgInvalidLetters {
			t.Errorf("ValidateLetters(%q) message = %q, want %q", input, msg, MsgInvalidLetters)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"TEXT", true}, // case-sensitive
		{"svg", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format, "text", "json")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}

	err := ValidateFormat("yaml", "text", "json")
	if !strings.Contains(err.Error(), "text, json") {
		t.Errorf("error should list accepted formats: %v", err)
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
}

func TestValidateLimit(t *testing.T) {
	if err := ValidateLimit(0); err != nil {
		t.Errorf("ValidateLimit(0) = %v", err)
	}
	if err := ValidateLimit(10); err != nil {
		t.Errorf("ValidateLimit(10) = %v", err)
	}
	if err := ValidateLimit(-1); !Is(err, ErrCodeInvalidLimit) {
		t.Errorf("ValidateLimit(-1) = %v, want %v", err, ErrCodeInvalidLimit)
	}
}
