package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/anagram/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON}

// Document is a list of anagrams together with what produced it.
type Document struct {
	Letters   string   `json:"letters"`
	Count     int      `json:"count"`
	Total     int      `json:"total"`
	Truncated bool     `json:"truncated"`
	Anagrams  []string `json:"anagrams"`
}

// NewDocument builds a Document for anagrams generated from letters, where
// total is the full number of anagrams the letters have.
func NewDocument(letters string, anagrams []string, total int) Document {
	if anagrams == nil {
		anagrams = []string{}
	}
	return Document{
		Letters:   letters,
		Count:     len(anagrams),
		Total:     total,
		Truncated: len(anagrams) < total,
		Anagrams:  anagrams,
	}
}

// WriteText writes anagrams to w, one per line.
func WriteText(w io.Writer, anagrams []string) error {
	bw := bufio.NewWriter(w)
	for _, a := range anagrams {
		bw.WriteString(a)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteJSON encodes doc as indented JSON and writes it to w.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write writes doc to w in the given format.
func Write(w io.Writer, format string, doc Document) error {
	switch format {
	case FormatText:
		return WriteText(w, doc.Anagrams)
	case FormatJSON:
		return WriteJSON(w, doc)
	default:
		return errors.ValidateFormat(format, Formats...)
	}
}

// Encode returns doc encoded in the given format.
func Encode(format string, doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFile writes data to path, or to stdout when path is empty or "-".
func ExportFile(data []byte, path string) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
