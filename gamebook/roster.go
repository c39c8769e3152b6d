package gamebook

import (
	"fmt"
	"strings"
)

// RosterEntry is one player in the participation report.
type RosterEntry struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Position       string `json:"position"`
	Number         string `json:"number"`
	StarterOrBench string `json:"starter_or_bench"`
	Team           string `json:"team"`
}

// TeamRoster holds one side's participation split into starters and bench.
type TeamRoster struct {
	Starter []RosterEntry `json:"starter"`
	Bench   []RosterEntry `json:"bench"`
}

// rosterHeader re-heads a "#"-delimited roster sub-block so the table
// reconstructor sees the printed column names. The implicit index column is
// the player's first initial.
const rosterHeader = "Last Name\nPosition\n#"

const rosterColumns = 4

// parseRoster splits one side's participation block into its starter and
// bench sub-tables. The printed layout separates the two tables with "#",
// the last header token of each.
func parseRoster(block, team, side string) (TeamRoster, error) {
	parts := strings.Split(block, "#")
	if len(parts) < 3 {
		return TeamRoster{}, fmt.Errorf("participation %s: unexpected section count %d splitting on %q (want at least 3)", side, len(parts), "#")
	}

	starter, err := parseRosterTable(parts[1], team, "starter")
	if err != nil {
		return TeamRoster{}, fmt.Errorf("participation %s: %w", side, err)
	}
	bench, err := parseRosterTable(parts[2], team, "bench")
	if err != nil {
		return TeamRoster{}, fmt.Errorf("participation %s: %w", side, err)
	}
	return TeamRoster{Starter: starter, Bench: bench}, nil
}

func parseRosterTable(blob, team, role string) ([]RosterEntry, error) {
	records, err := ReconstructTable(rosterHeader+blob, TableSpec{Columns: rosterColumns})
	if err != nil {
		return nil, err
	}

	entries := make([]RosterEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, RosterEntry{
			FirstName:      rec.String("Index"),
			LastName:       rec.String("Last Name"),
			Position:       rec.String("Position"),
			Number:         rec.String("#"),
			StarterOrBench: role,
			Team:           team,
		})
	}
	return entries, nil
}
