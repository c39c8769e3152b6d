// Package export serializes an assembled gamebook Document: JSON for
// downstream consumers, XLSX and Markdown for people.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fieldline/scoutbook/gamebook"
)

// WriteJSON writes the document as indented JSON. Non-ASCII text is
// preserved verbatim; nothing in a gamebook benefits from HTML escaping.
func WriteJSON(w io.Writer, doc *gamebook.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// SaveJSON writes the document to a file at path.
func SaveJSON(path string, doc *gamebook.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteJSON(f, doc); err != nil {
		return err
	}
	return f.Close()
}
