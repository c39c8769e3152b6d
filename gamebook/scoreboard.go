package gamebook

import (
	"fmt"
	"strconv"
	"strings"
)

// scoreboardQuarters is the number of score columns printed per side
// (four quarters, overtime, final).
const scoreboardQuarters = 6

// parseScoreboard reads the quarter-score block: six header tokens, then a
// side label, team name and six integer scores for the visitor, then the
// same shape for the home side. Output preserves Visitor-then-Home order.
func parseScoreboard(block string) ([]Record, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	// headers + 2x (side label + team + scores)
	need := scoreboardQuarters + 2*(scoreboardQuarters+2)
	if len(lines) < need {
		return nil, fmt.Errorf("scoreboard: %d lines, need at least %d", len(lines), need)
	}

	headers := make([]string, scoreboardQuarters)
	for i := range headers {
		headers[i] = strings.TrimSpace(lines[i])
	}

	parseSide := func(side string, start int) (Record, error) {
		var rec Record
		rec.Set("Side", side)
		rec.Set("Team", strings.TrimSpace(lines[start+1]))
		for i := 0; i < scoreboardQuarters; i++ {
			raw := strings.TrimSpace(lines[start+2+i])
			score, err := strconv.Atoi(raw)
			if err != nil {
				return Record{}, fmt.Errorf("scoreboard: %s %s score %q is not an integer", side, headers[i], raw)
			}
			rec.Set(headers[i], score)
		}
		return rec, nil
	}

	visitorIndex := scoreboardQuarters
	visitor, err := parseSide("Visitor", visitorIndex)
	if err != nil {
		return nil, err
	}
	home, err := parseSide("Home", visitorIndex+scoreboardQuarters+2)
	if err != nil {
		return nil, err
	}
	return []Record{visitor, home}, nil
}
