package gamebook

// table.go — generic tabular-record reconstruction.
//
// PDF text extraction flattens a printed table into one token per line, in
// row-then-column order, with no delimiters. Rows can only be rebuilt from
// the known column count. Every table in this layout carries an implicit
// left column (team code, position, drive number) whose header is never
// printed, so a synthetic "Index" token is prepended before slicing.

import (
	"fmt"
	"strings"
)

// TableSpec governs how a flat token stream is folded into records.
type TableSpec struct {
	// Columns is the number of columns per row, including the implicit
	// index column.
	Columns int

	// Keys are explicit field names. When nil, the first HeaderOffset
	// tokens of the stream are used instead.
	Keys []string

	// HeaderOffset is the number of leading tokens consumed as the header
	// row. Zero means Columns.
	HeaderOffset int
}

// ReconstructTable folds the newline-separated token stream in blob into
// row-major records per spec. Trailing tokens that do not complete a full
// row are dropped; the extraction layer routinely truncates trailing
// whitespace and a partial record would be noise.
//
// A key list shorter than the column count is a configuration defect and
// returns an error; callers must abort the whole parse.
func ReconstructTable(blob string, spec TableSpec) ([]Record, error) {
	tokens := strings.Split("Index\n"+strings.TrimSpace(blob), "\n")

	offset := spec.HeaderOffset
	if offset == 0 {
		offset = spec.Columns
	}

	keys := spec.Keys
	if keys == nil {
		if offset > len(tokens) {
			offset = len(tokens)
		}
		keys = tokens[:offset]
	}
	if len(keys) < spec.Columns {
		return nil, fmt.Errorf("table: key list has %d entries, need %d columns", len(keys), spec.Columns)
	}

	if offset > len(tokens) {
		return nil, nil
	}
	values := tokens[offset:]

	var records []Record
	var current Record
	for i, value := range values {
		pointer := i % spec.Columns
		current.Set(keys[pointer], value)
		if pointer == spec.Columns-1 {
			records = append(records, current)
			current = Record{}
		}
	}
	return records, nil
}
