package errors

import (
	"strings"
	"unicode"
)

// MsgInvalidLetters is the single message shown for every rejected input,
// whatever the offending character.
const MsgInvalidLetters = "invalid input: use letters only and do not leave it empty"

// ValidateLetters checks that text is non-empty and made only of letters.
//
// A rune counts as a letter when unicode.IsLetter reports true, so accented
// and non-Latin letters are accepted. Digits, punctuation, whitespace and
// control characters are rejected, all with the same message.
func ValidateLetters(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, MsgInvalidLetters)
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return New(ErrCodeInvalidInput, MsgInvalidLetters)
		}
	}
	return nil
}

// ValidateFormat checks that format is one of the accepted names.
// Matching is case-sensitive.
func ValidateFormat(format string, accepted ...string) error {
	for _, a := range accepted {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(accepted, ", "))
}

// ValidateLimit rejects negative limits. Zero means "no limit".
func ValidateLimit(limit int) error {
	if limit < 0 {
		return New(ErrCodeInvalidLimit, "limit cannot be negative: %d", limit)
	}
	return nil
}
