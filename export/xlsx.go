package export

// xlsx.go — XLSX workbook export using the excelize library.
// Each document section becomes one sheet; record fields become columns in
// insertion order.

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fieldline/scoutbook/gamebook"
)

// WriteXLSX writes the document as an XLSX workbook.
func WriteXLSX(w io.Writer, doc *gamebook.Document) error {
	f, err := buildWorkbook(doc)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the document as an XLSX workbook at path.
func SaveXLSX(path string, doc *gamebook.Document) error {
	f, err := buildWorkbook(doc)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func buildWorkbook(doc *gamebook.Document) (*excelize.File, error) {
	f := excelize.NewFile()

	sheets := []struct {
		name string
		rows [][]string
	}{
		{"Meta", fieldRows(doc.Meta)},
		{"Score Board", recordRowsOrNil(doc.ScoreBoard)},
		{"Officials", fieldRows(doc.Officials)},
		{"Touchdowns", recordRowsOrNil(doc.Touchdowns)},
		{"Field Goals", recordRowsOrNil(doc.FieldGoals)},
		{"Team Stats", recordRowsOrNil(doc.TeamStats)},
		{"Passing", sideRows(doc.IndividualStats.Passing)},
		{"Rushing", sideRows(doc.IndividualStats.Rushing)},
		{"Receiving", sideRows(doc.IndividualStats.Receiving)},
		{"Defense", sideRows(doc.DefenseStats)},
		{"Drive Summary", sideRows(doc.Drives.Summary)},
		{"Play by Play", playByPlayRows(doc.Drives.PlayByPlay)},
		{"Participation", participationRows(doc.Participation)},
	}

	for _, sheet := range sheets {
		if len(sheet.rows) < 2 { // header only, nothing to show
			continue
		}
		if err := writeSheet(f, sheet.name, sheet.rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	// Drop the default sheet left over from NewFile.
	if _, err := f.GetSheetIndex("Meta"); err == nil {
		_ = f.DeleteSheet("Sheet1")
	}
	return f, nil
}

func writeSheet(f *excelize.File, name string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("sheet %q cell (%d,%d): %w", name, r+1, c+1, err)
			}
			if err := f.SetCellValue(name, cell, val); err != nil {
				return fmt.Errorf("sheet %q cell %s: %w", name, cell, err)
			}
		}
	}
	return nil
}

func recordRowsOrNil(records []gamebook.Record) [][]string {
	if len(records) == 0 {
		return nil
	}
	return recordRows(records)
}

// sideRows stacks the visitor and home variants of a table into one sheet
// with a leading Side column.
func sideRows(tables gamebook.SideTables) [][]string {
	var rows [][]string
	appendSide := func(side string, records []gamebook.Record) {
		if len(records) == 0 {
			return
		}
		body := recordRows(records)
		if rows == nil {
			rows = append(rows, append([]string{"Side"}, body[0]...))
		}
		for _, row := range body[1:] {
			rows = append(rows, append([]string{side}, row...))
		}
	}
	appendSide("Visitors", tables.Visitors)
	appendSide("Home", tables.Home)
	return rows
}

func playByPlayRows(drives []gamebook.Drive) [][]string {
	if len(drives) == 0 {
		return nil
	}
	rows := [][]string{{"Drive", "Possession", "Down&Distance", "YardLine", "Details"}}
	for _, drive := range drives {
		for _, p := range drive.Plays {
			rows = append(rows, []string{drive.Name, p.Possession, p.DownAndDistance, p.YardLine, p.Details})
		}
	}
	return rows
}

func participationRows(p *gamebook.Participation) [][]string {
	if p == nil {
		return nil
	}
	rows := [][]string{{"Team", "Role", "First", "Last Name", "Position", "#"}}
	for _, roster := range []gamebook.TeamRoster{p.Visitors, p.Home} {
		for _, entries := range [][]gamebook.RosterEntry{roster.Starter, roster.Bench} {
			for _, e := range entries {
				rows = append(rows, []string{e.Team, e.StarterOrBench, e.FirstName, e.LastName, e.Position, e.Number})
			}
		}
	}
	if len(rows) == 1 {
		return nil
	}
	return rows
}
