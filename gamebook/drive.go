package gamebook

// drive.go — play-by-play tokenization.
//
// A drive block is the text between two "Drive Start" boundaries. After the
// fixed boilerplate is stripped, the remaining lines follow a loose grammar:
//
//	possession token        two or three uppercase letters on their own line
//	down-and-distance       "1&10", absent for kickoffs and conversions
//	yard line               "@ AB35"
//	details                 free text, possibly wrapped over several lines
//
// The scanner is an explicit state machine over the line stream so each edge
// case (missing down-and-distance, wrapped details, doubled headings) is a
// single transition rather than regex lookahead.

import (
	"fmt"
	"regexp"
	"strings"
)

type scanState int

const (
	awaitPossession scanState = iota
	awaitDownDistance
	awaitYardLine
	accumulateDetails
)

var (
	// possessionLineRE accepts the 2-3 letter team codes the extraction
	// layer emits as headings; PlayEvent validation later enforces the
	// stricter two-letter shape.
	possessionLineRE = regexp.MustCompile(`^[A-Z]{2,3}$`)

	// trailingCodeRE matches a possession-token suffix the extraction
	// layer sometimes glues onto the end of a details line.
	trailingCodeRE = regexp.MustCompile(`\s+[A-Z]{2}$`)

	// driveStartRE is the per-drive header: team name, starting spot,
	// clock and drive number.
	driveStartRE = regexp.MustCompile(`^[A-Za-z\s.'-]+?Spot:\s+\w+\s+Clock:\s+\d{2}:\d{2}\s+Drive:\s+\d+\s*`)

	// driveSummaryRE is the per-drive footer: play count, net yards, time
	// of possession and score delta.
	driveSummaryRE = regexp.MustCompile(`\s*Plays\s+\d+\s+Yards\s+-?\d+\s+TOP\s+\d{2}:\d{2}\s+SCORE\s*[\d-]*`)
)

// noDownPlaceholder stands in for the down-and-distance of plays that have
// none, so every event carries all four fields.
const noDownPlaceholder = "0&0"

// TokenizeDrive converts one drive block into its ordered play events.
// A malformed event is fatal for the drive unless opts.SkipMalformed is set,
// in which case the event is dropped and scanning continues.
func TokenizeDrive(block string, opts Options) ([]PlayEvent, error) {
	observe(opts.Observer, "tokenize_drive")

	block = stripDriveBoilerplate(block)
	lines := collapseRepeatedCodes(splitLines(block))

	sc := driveScanner{opts: opts}
	for _, line := range lines {
		if err := sc.feed(line); err != nil {
			return nil, err
		}
	}
	if err := sc.finish(); err != nil {
		return nil, err
	}
	return sc.events, nil
}

// stripDriveBoilerplate removes the drive-start header and every
// drive-summary footer from the block. Both are fixed-shape; anything that
// does not match is left alone.
func stripDriveBoilerplate(block string) string {
	block = strings.TrimSpace(block)
	if loc := driveStartRE.FindStringIndex(block); loc != nil {
		block = block[loc[1]:]
	}
	return driveSummaryRE.ReplaceAllString(block, "")
}

func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// collapseRepeatedCodes drops a possession token that immediately repeats;
// the extraction layer sometimes doubles a heading.
func collapseRepeatedCodes(lines []string) []string {
	var out []string
	for i, line := range lines {
		if i+1 < len(lines) && line == lines[i+1] && possessionLineRE.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

type driveScanner struct {
	opts   Options
	state  scanState
	cur    PlayEvent
	events []PlayEvent
}

func (s *driveScanner) feed(line string) error {
	switch s.state {
	case awaitPossession:
		if possessionLineRE.MatchString(line) {
			s.cur = PlayEvent{Possession: line}
			s.state = awaitDownDistance
		}
		// Anything before the first possession token is leading noise.

	case awaitDownDistance:
		switch {
		case downDistanceRE.MatchString(line):
			s.cur.DownAndDistance = line
			s.state = awaitYardLine
		case strings.HasPrefix(line, "@"):
			// Kickoffs and conversions carry no down.
			s.cur.DownAndDistance = noDownPlaceholder
			s.cur.YardLine = line
			s.state = accumulateDetails
		}

	case awaitYardLine:
		if strings.HasPrefix(line, "@") {
			s.cur.YardLine = line
			s.state = accumulateDetails
		}

	case accumulateDetails:
		switch {
		case possessionLineRE.MatchString(line):
			if err := s.close(); err != nil {
				return err
			}
			s.cur = PlayEvent{Possession: line}
			s.state = awaitDownDistance
		case downDistanceRE.MatchString(line), strings.HasPrefix(line, "@"):
			// Orphan tokens without a preceding possession heading; the
			// current event is complete, the orphan is unusable.
			if err := s.close(); err != nil {
				return err
			}
			s.state = awaitPossession
		default:
			line = trailingCodeRE.ReplaceAllString(line, "")
			if s.cur.Details == "" {
				s.cur.Details = line
			} else {
				s.cur.Details += " " + line
			}
		}
	}
	return nil
}

// finish closes the event left open at end of block. An event that never
// accumulated details is an incomplete trailer and is dropped.
func (s *driveScanner) finish() error {
	if s.state == accumulateDetails && s.cur.Details != "" {
		return s.close()
	}
	return nil
}

func (s *driveScanner) close() error {
	if err := s.cur.Validate(); err != nil {
		if s.opts.SkipMalformed {
			observe(s.opts.Observer, "skip_malformed_event")
			return nil
		}
		return fmt.Errorf("drive: %w", err)
	}
	s.events = append(s.events, s.cur)
	return nil
}
