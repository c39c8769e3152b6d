// Package extract pulls the text layer out of a gamebook PDF, one string per
// page, in page order.
//
// Uses github.com/ledongthuc/pdf for parsing. Only the embedded text layer
// is read; scanned (image-only) gamebooks have no text layer and yield empty
// pages.
package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PagesFromFile extracts one text string per page from the PDF at path.
func PagesFromFile(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	pages, err := pagesFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf %s: %w", path, err)
	}
	return pages, nil
}

// Pages extracts page texts from an in-memory PDF, as received from an
// upload.
func Pages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return pagesFromReader(r)
}

// PagesFrom reads all of src into memory and extracts its page texts.
func PagesFrom(src io.Reader) ([]string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return Pages(data)
}

func pagesFromReader(r *pdf.Reader) ([]string, error) {
	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			// Keep indexes aligned with physical pages.
			pages = append(pages, "")
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
