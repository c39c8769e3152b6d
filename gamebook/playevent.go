package gamebook

import (
	"fmt"
	"regexp"
)

// PlayEvent is one play inside a drive. JSON field names mirror the printed
// gamebook column headers.
type PlayEvent struct {
	// Possession is the two-letter code of the team with the ball.
	Possession string `json:"Index"`

	// DownAndDistance is "down&distance" ("1&10"), or "0&0" for plays with
	// no conventional down (kickoffs, extra points).
	DownAndDistance string `json:"Down&Distance"`

	// YardLine is the spot the play started from, e.g. "@ AB35".
	YardLine string `json:"YardLine"`

	// Details is the free-text play description.
	Details string `json:"Details"`
}

var (
	possessionRE   = regexp.MustCompile(`^[A-Z]{2}$`)
	downDistanceRE = regexp.MustCompile(`^\d+&\d+$`)
	yardLineRE     = regexp.MustCompile(`^@ ?[A-Z]+\d+$`)
)

// Validate checks the field-shape invariants. DownAndDistance and YardLine
// may be empty; Possession may not.
func (e PlayEvent) Validate() error {
	if !possessionRE.MatchString(e.Possession) {
		return fmt.Errorf("play event: possession %q must be two uppercase letters", e.Possession)
	}
	if e.DownAndDistance != "" && !downDistanceRE.MatchString(e.DownAndDistance) {
		return fmt.Errorf("play event: down and distance %q must match digits&digits", e.DownAndDistance)
	}
	if e.YardLine != "" && !yardLineRE.MatchString(e.YardLine) {
		return fmt.Errorf("play event: yard line %q must be @ followed by a team code and number", e.YardLine)
	}
	return nil
}
