package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/perm"
)

// ReadText reads anagrams from r, one per line. Empty lines are skipped.
func ReadText(r io.Reader) ([]string, error) {
	var out []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := s.Text(); line != "" {
			out = append(out, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return out, nil
}

// ReadJSON decodes a Document from r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// Decode parses data written by Encode in the given format.
//
// For the text format the letters are taken from the first line and the
// total is recomputed from their count.
func Decode(format string, data []byte) (Document, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(bytes.NewReader(data))
	case FormatText:
		anagrams, err := ReadText(bytes.NewReader(data))
		if err != nil {
			return Document{}, err
		}
		if len(anagrams) == 0 {
			return NewDocument("", nil, 0), nil
		}
		letters := anagrams[0]
		return NewDocument(letters, anagrams, perm.Count(len([]rune(letters)))), nil
	default:
		return Document{}, errors.ValidateFormat(format, Formats...)
	}
}
