package export

// markdown.go — Markdown report rendering.
//
// One shared table renderer keeps every section of the report looking the
// same. Records render with their fields as columns, in insertion order.

import (
	"fmt"
	"strings"

	"github.com/fieldline/scoutbook/gamebook"
)

const minColWidth = 3 // minimum separator width for a valid Markdown table (---)

// RenderMarkdown formats the document as a human-readable Markdown report,
// one heading per section.
func RenderMarkdown(doc *gamebook.Document) string {
	var sb strings.Builder

	sb.WriteString("# " + doc.Meta.String("League") + " Gamebook\n\n")

	writeRecordTable := func(heading string, records []gamebook.Record) {
		if len(records) == 0 {
			return
		}
		sb.WriteString("## " + heading + "\n\n")
		sb.WriteString(renderMarkdownTable(recordRows(records)))
		sb.WriteByte('\n')
	}

	sb.WriteString("## Meta\n\n")
	sb.WriteString(renderMarkdownTable(fieldRows(doc.Meta)))
	sb.WriteByte('\n')

	writeRecordTable("Score by Quarters", doc.ScoreBoard)

	if doc.Officials.Len() > 0 {
		sb.WriteString("## Officials\n\n")
		sb.WriteString(renderMarkdownTable(fieldRows(doc.Officials)))
		sb.WriteByte('\n')
	}

	writeRecordTable("Touchdowns", doc.Touchdowns)
	writeRecordTable("Field Goals", doc.FieldGoals)
	writeRecordTable("Team Statistics", doc.TeamStats)

	writeRecordTable("Passing (Visitors)", doc.IndividualStats.Passing.Visitors)
	writeRecordTable("Passing (Home)", doc.IndividualStats.Passing.Home)
	writeRecordTable("Rushing (Visitors)", doc.IndividualStats.Rushing.Visitors)
	writeRecordTable("Rushing (Home)", doc.IndividualStats.Rushing.Home)
	writeRecordTable("Receiving (Visitors)", doc.IndividualStats.Receiving.Visitors)
	writeRecordTable("Receiving (Home)", doc.IndividualStats.Receiving.Home)

	writeRecordTable("Defense (Visitors)", doc.DefenseStats.Visitors)
	writeRecordTable("Defense (Home)", doc.DefenseStats.Home)

	writeRecordTable("Drive Summary (Home)", doc.Drives.Summary.Home)
	writeRecordTable("Drive Summary (Visitors)", doc.Drives.Summary.Visitors)

	for _, drive := range doc.Drives.PlayByPlay {
		sb.WriteString("## " + drive.Name + "\n\n")
		sb.WriteString(renderMarkdownTable(playRows(drive.Plays)))
		sb.WriteByte('\n')
	}

	if doc.Participation != nil {
		writeRosterTables(&sb, "Visitors", doc.Participation.Visitors)
		writeRosterTables(&sb, "Home", doc.Participation.Home)
	}

	return sb.String()
}

func writeRosterTables(sb *strings.Builder, side string, roster gamebook.TeamRoster) {
	for _, group := range []struct {
		name    string
		entries []gamebook.RosterEntry
	}{
		{"Starters", roster.Starter},
		{"Bench", roster.Bench},
	} {
		if len(group.entries) == 0 {
			continue
		}
		sb.WriteString("## Participation " + side + " " + group.name + "\n\n")
		rows := [][]string{{"First", "Last Name", "Position", "#"}}
		for _, e := range group.entries {
			rows = append(rows, []string{e.FirstName, e.LastName, e.Position, e.Number})
		}
		sb.WriteString(renderMarkdownTable(rows))
		sb.WriteByte('\n')
	}
}

// recordRows flattens records into table rows, using the first record's
// field order as the header.
func recordRows(records []gamebook.Record) [][]string {
	keys := records[0].Keys()
	rows := [][]string{keys}
	for _, rec := range records {
		row := make([]string, len(keys))
		for i, key := range keys {
			v, _ := rec.Get(key)
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	return rows
}

// fieldRows renders a single record as a two-column key/value table.
func fieldRows(rec gamebook.Record) [][]string {
	rows := [][]string{{"Field", "Value"}}
	for _, f := range rec.Fields() {
		rows = append(rows, []string{f.Key, cellString(f.Value)})
	}
	return rows
}

func playRows(plays []gamebook.PlayEvent) [][]string {
	rows := [][]string{{"Possession", "Down&Distance", "YardLine", "Details"}}
	for _, p := range plays {
		rows = append(rows, []string{p.Possession, p.DownAndDistance, p.YardLine, p.Details})
	}
	return rows
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// renderMarkdownTable converts a [][]string into a GitHub-Flavored Markdown
// table. The first row is treated as the header. Each column is padded to the
// width of its widest cell (minimum minColWidth).
func renderMarkdownTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	if maxCols == 0 {
		return ""
	}

	widths := make([]int, maxCols)
	for i := range widths {
		widths[i] = minColWidth
	}
	for _, row := range rows {
		for i, raw := range row {
			if i < maxCols {
				if w := len(escapePipes(raw)); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return escapePipes(row[col])
		}
		return ""
	}
	pad := func(s string, w int) string {
		if len(s) >= w {
			return s
		}
		return s + strings.Repeat(" ", w-len(s))
	}

	var sb strings.Builder

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" " + pad(cell(rows[0], i), widths[i]) + " |")
	}
	sb.WriteByte('\n')

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" " + strings.Repeat("-", widths[i]) + " |")
	}
	sb.WriteByte('\n')

	for _, row := range rows[1:] {
		sb.WriteString("|")
		for i := 0; i < maxCols; i++ {
			sb.WriteString(" " + pad(cell(row, i), widths[i]) + " |")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// escapePipes replaces | characters in a cell value so they do not break the
// Markdown table syntax.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
