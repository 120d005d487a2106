// Package anagram turns user text into anagrams.
//
// It is the glue around [perm]: it validates raw text, splits it into
// letters, permutes them and joins every permutation back into a string.
//
//	words, err := anagram.Generate("abc")
//	// words: abc bac cab acb bca cba
//
// Input must be non-empty and made only of letters (see [Validate]). Letters
// may repeat; repeated letters produce repeated anagrams, one per
// permutation of positions.
package anagram

import (
	"strings"

	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/perm"
)

// Validate reports whether text can be turned into anagrams.
// It returns an error with code [errors.ErrCodeInvalidInput] when text is
// empty or contains anything other than letters.
func Validate(text string) error {
	return errors.ValidateLetters(text)
}

// Letters splits text into its letters, one rune per position.
func Letters(text string) []rune {
	return []rune(text)
}

// Join builds the text for one permutation of letters.
func Join(letters []rune) string {
	return string(letters)
}

// Normalize strips one trailing line terminator ("\n" or "\r\n") from a
// line read from a terminal or a pipe. Nothing else is trimmed: spaces are
// kept and later rejected by Validate.
func Normalize(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Generate validates text and returns all of its anagrams in generation
// order. The first anagram is text itself.
func Generate(text string) ([]string, error) {
	return GenerateN(text, 0)
}

// GenerateN is like Generate but returns at most limit anagrams when
// limit > 0.
func GenerateN(text string, limit int) ([]string, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}
	if err := errors.ValidateLimit(limit); err != nil {
		return nil, err
	}
	return Strings(perm.GenerateN(Letters(text), limit)), nil
}

// Strings converts permutations of letters into strings, keeping order.
func Strings(perms [][]rune) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = Join(p)
	}
	return out
}

// Total returns how many anagrams text has without generating them:
// n! for n letters, saturating at math.MaxInt.
func Total(text string) int {
	return perm.Count(len(Letters(text)))
}
