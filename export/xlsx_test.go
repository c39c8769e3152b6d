package export

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleDocument()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	for _, want := range []string{"Meta", "Score Board", "Officials", "Touchdowns", "Team Stats", "Passing", "Drive Summary", "Play by Play", "Participation"} {
		if !slices.Contains(sheets, want) {
			t.Errorf("sheet %q missing, have %v", want, sheets)
		}
	}
	if slices.Contains(sheets, "Sheet1") {
		t.Error("default sheet was not removed")
	}
	// Sections without data get no sheet.
	if slices.Contains(sheets, "Field Goals") || slices.Contains(sheets, "Defense") {
		t.Error("empty sections should not produce sheets")
	}

	assertCell(t, f, "Meta", "A1", "Field")
	assertCell(t, f, "Meta", "B2", "Premier Winter Football League")

	assertCell(t, f, "Score Board", "A1", "Side")
	assertCell(t, f, "Score Board", "B2", "Seagulls")
	assertCell(t, f, "Score Board", "C3", "14")

	assertCell(t, f, "Officials", "A2", "Referee")
	assertCell(t, f, "Officials", "B2", "J. Müller")

	// Stacked side tables carry a leading Side column.
	assertCell(t, f, "Passing", "A1", "Side")
	assertCell(t, f, "Passing", "A2", "Visitors")
	assertCell(t, f, "Passing", "B2", "Mora")
	assertCell(t, f, "Passing", "A3", "Home")
	assertCell(t, f, "Passing", "B3", "Lang")

	assertCell(t, f, "Play by Play", "A2", "Drive 01")
	assertCell(t, f, "Play by Play", "B2", "SG")
	assertCell(t, f, "Play by Play", "E2", "pass <deep> to Keller & complete")

	// Visitor roster rows precede home roster rows.
	assertCell(t, f, "Participation", "A2", "Seagulls")
	assertCell(t, f, "Participation", "D2", "Keller")
	assertCell(t, f, "Participation", "A3", "Bearcats")
	assertCell(t, f, "Participation", "B4", "bench")
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.xlsx")
	if err := SaveXLSX(path, sampleDocument()); err != nil {
		t.Fatalf("SaveXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	assertCell(t, f, "Meta", "A2", "League")
}

func assertCell(t *testing.T, f *excelize.File, sheet, cell, want string) {
	t.Helper()
	got, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("%s!%s: %v", sheet, cell, err)
	}
	if got != want {
		t.Errorf("%s!%s: got %q, want %q", sheet, cell, got, want)
	}
}
