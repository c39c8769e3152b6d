package gamebook

// assemble.go — document assembly.
//
// Each page of the report has a fixed role, and within a page the structural
// regions are delimited by literal marker strings that must match the
// extracted text byte for byte, embedded line breaks included. A marker
// occurring the wrong number of times means the page is mis-shaped and the
// document cannot be assembled; there is no partial-document mode.

import (
	"fmt"
	"strings"
)

// Literal section-boundary markers.
const (
	markScoreByQuarters = "Score by Quarters"
	markScoringPlays    = "Scoring Plays"
	markFieldGoals      = "Field\nGoals"
	markOfficials       = "Officials"
	markWeather         = "Weather\n"
	markTeamColumn      = "Team"
	markPassing         = "Passing"
	markRushing         = "Rushing"
	markReceiving       = "Receiving"
	markDefense         = "Defense"
	markHowGiven        = "How Given"
	markParticipation   = "Participation Report"
	markDriveStart      = "Drive Start"
	markPlayByPlay      = "Play-by-Play Summary"
)

// Fixed page roles, in order.
const (
	pageHeader = iota
	pageTeamTotals
	pageOffense
	pageDefense
	pageDriveSummary
	pagePlayByPlay // and everything after
	minPages
)

// Column counts of the reconstructed tables.
const (
	scoringPlayColumns  = 6
	passingColumns      = 10
	rushingColumns      = 6
	receivingColumns    = 6
	defenseColumns      = 13
	driveSummaryColumns = 12
)

// driveSummaryKeys are the printed column names of the drive-summary tables.
// The header row omits the final "How Given Up" label, hence the explicit
// key list with a header offset one short of the column count.
var driveSummaryKeys = []string{
	"index",
	"Start QTR",
	"Start Time",
	"End QTR",
	"End Time",
	"Poss. Time",
	"How Obtained",
	"Start Yrd",
	"No. Plays",
	"Net Yds",
	"End Yrd",
	"How Given Up",
}

const driveSummaryHeaderOffset = 11

// Options tunes a parse invocation.
type Options struct {
	// SkipMalformed drops a play event that fails validation instead of
	// aborting the drive. Off by default: a malformed token usually means
	// the extraction drifted and the whole document is suspect.
	SkipMalformed bool

	// Observer, when non-nil, is notified once per parser operation.
	Observer Observer
}

// Assemble converts the ordered page texts of one gamebook into a Document.
// The engine is a pure function of its input: no state survives between
// calls, and any fatal condition leaves no partial document behind.
func Assemble(pages []string, opts Options) (*Document, error) {
	observe(opts.Observer, "assemble")

	if len(pages) < minPages {
		return nil, fmt.Errorf("gamebook: %d pages, need at least %d", len(pages), minPages)
	}

	doc := &Document{}
	if err := parseHeaderPage(pages[pageHeader], doc, opts); err != nil {
		return nil, fmt.Errorf("page %d: %w", pageHeader+1, err)
	}
	parseTeamTotalsPage(pages[pageTeamTotals], doc, opts)
	if err := parseOffensePage(pages[pageOffense], doc, opts); err != nil {
		return nil, fmt.Errorf("page %d: %w", pageOffense+1, err)
	}
	if err := parseDefensePage(pages[pageDefense], doc, opts); err != nil {
		return nil, fmt.Errorf("page %d: %w", pageDefense+1, err)
	}
	if err := parseDriveSummaryPage(pages[pageDriveSummary], doc, opts); err != nil {
		return nil, fmt.Errorf("page %d: %w", pageDriveSummary+1, err)
	}
	if err := parsePlayByPlayPages(pages[pagePlayByPlay:], doc, opts); err != nil {
		return nil, fmt.Errorf("pages %d+: %w", pagePlayByPlay+1, err)
	}
	return doc, nil
}

// parseHeaderPage handles metadata, the quarter scoreboard, officials and
// the scoring-play and field-goal tables.
func parseHeaderPage(page string, doc *Document, opts Options) error {
	observe(opts.Observer, "parse_header_page")

	meta, rest, err := splitOnce(page, markScoreByQuarters)
	if err != nil {
		return err
	}
	scoreQuarters, rest, err := splitOnce(rest, markScoringPlays)
	if err != nil {
		return err
	}
	scoringPlays, rest, err := splitOnce(rest, markFieldGoals)
	if err != nil {
		return err
	}
	fieldGoals, rest, err := splitOnce(rest, markOfficials)
	if err != nil {
		return err
	}
	officials, weather, err := splitOnce(rest, markWeather)
	if err != nil {
		return err
	}

	if doc.Meta, err = parseMetadata(meta, weather); err != nil {
		return err
	}
	if doc.ScoreBoard, err = parseScoreboard(scoreQuarters); err != nil {
		return err
	}
	doc.Officials = parseOfficials(officials)

	if doc.Touchdowns, err = parseScoringTable(scoringPlays); err != nil {
		return fmt.Errorf("scoring plays: %w", err)
	}
	if doc.FieldGoals, err = parseScoringTable(fieldGoals); err != nil {
		return fmt.Errorf("field goals: %w", err)
	}
	return nil
}

// parseScoringTable reconstructs a scoring table from the text after its
// "Team" heading, which doubles as the first printed column header.
func parseScoringTable(section string) ([]Record, error) {
	parts := strings.Split(section, markTeamColumn)
	if len(parts) < 2 {
		return nil, fmt.Errorf("unexpected section count: marker %q not found", markTeamColumn)
	}
	return ReconstructTable(parts[1], TableSpec{Columns: scoringPlayColumns})
}

func parseTeamTotalsPage(page string, doc *Document, opts Options) {
	observe(opts.Observer, "parse_team_totals_page")
	doc.TeamStats = parseTeamStats(page)
}

func parseOffensePage(page string, doc *Document, opts Options) error {
	observe(opts.Observer, "parse_offense_page")

	passing, err := splitSections(page, markPassing, 3)
	if err != nil {
		return err
	}
	rushing, err := splitSections(passing[2], markRushing, 3)
	if err != nil {
		return err
	}
	receiving, err := splitSections(rushing[2], markReceiving, 3)
	if err != nil {
		return err
	}

	stats := &doc.IndividualStats
	for _, t := range []struct {
		dst     *[]Record
		blob    string
		columns int
		name    string
	}{
		{&stats.Passing.Visitors, passing[1], passingColumns, "passing visitors"},
		{&stats.Passing.Home, rushing[0], passingColumns, "passing home"},
		{&stats.Rushing.Visitors, rushing[1], rushingColumns, "rushing visitors"},
		{&stats.Rushing.Home, receiving[0], rushingColumns, "rushing home"},
		{&stats.Receiving.Visitors, receiving[1], receivingColumns, "receiving visitors"},
		{&stats.Receiving.Home, receiving[2], receivingColumns, "receiving home"},
	} {
		if *t.dst, err = ReconstructTable(t.blob, TableSpec{Columns: t.columns}); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}
	return nil
}

func parseDefensePage(page string, doc *Document, opts Options) error {
	observe(opts.Observer, "parse_defense_page")

	parts, err := splitSections(page, markDefense, 3)
	if err != nil {
		return err
	}
	if doc.DefenseStats.Visitors, err = ReconstructTable(parts[1], TableSpec{Columns: defenseColumns}); err != nil {
		return fmt.Errorf("defense visitors: %w", err)
	}
	if doc.DefenseStats.Home, err = ReconstructTable(parts[2], TableSpec{Columns: defenseColumns}); err != nil {
		return fmt.Errorf("defense home: %w", err)
	}
	return nil
}

// parseDriveSummaryPage reads the How Given tables; the home table is
// printed first.
func parseDriveSummaryPage(page string, doc *Document, opts Options) error {
	observe(opts.Observer, "parse_drive_summary_page")

	parts, err := splitSections(page, markHowGiven, 3)
	if err != nil {
		return err
	}
	spec := TableSpec{
		Columns:      driveSummaryColumns,
		Keys:         driveSummaryKeys,
		HeaderOffset: driveSummaryHeaderOffset,
	}
	if doc.Drives.Summary.Home, err = ReconstructTable(parts[1], spec); err != nil {
		return fmt.Errorf("drive summary home: %w", err)
	}
	if doc.Drives.Summary.Visitors, err = ReconstructTable(parts[2], spec); err != nil {
		return fmt.Errorf("drive summary visitors: %w", err)
	}
	return nil
}

// parsePlayByPlayPages handles everything from the play-by-play log onward.
// The participation report trails the log when present; a gamebook without
// one is still complete.
func parsePlayByPlayPages(pages []string, doc *Document, opts Options) error {
	observe(opts.Observer, "parse_play_by_play_pages")

	joined := strings.Join(pages, "\n")
	parts := strings.Split(joined, markParticipation)

	drivesText := parts[0]
	if len(parts) == 3 {
		// The home roster is printed before the visitor roster.
		homeTeam, visitorTeam := rosterTeamNames(doc)
		home, err := parseRoster(parts[1], homeTeam, "home")
		if err != nil {
			return err
		}
		visitors, err := parseRoster(parts[2], visitorTeam, "visitors")
		if err != nil {
			return err
		}
		doc.Participation = &Participation{Visitors: visitors, Home: home}
	}

	cleaned := stripPlayByPlayBanners(drivesText)
	chunks := strings.Split(cleaned, markDriveStart)
	for i, chunk := range chunks[1:] {
		name := fmt.Sprintf("Drive %02d", i+1)
		plays, err := TokenizeDrive(chunk, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		doc.Drives.PlayByPlay = append(doc.Drives.PlayByPlay, Drive{Name: name, Plays: plays})
	}
	return nil
}

// rosterTeamNames pulls the team names off the scoreboard so roster entries
// carry them; side labels stand in when the scoreboard is absent.
func rosterTeamNames(doc *Document) (home, visitor string) {
	home, visitor = "home", "visitors"
	for _, rec := range doc.ScoreBoard {
		if team := rec.String("Team"); team != "" {
			switch rec.String("Side") {
			case "Home":
				home = team
			case "Visitor":
				visitor = team
			}
		}
	}
	return home, visitor
}

// stripPlayByPlayBanners removes each quarter banner: the line holding the
// play-by-play heading plus the lines immediately before and after it.
func stripPlayByPlayBanners(text string) string {
	lines := strings.Split(text, "\n")
	var filtered []string
	for i := 0; i < len(lines); i++ {
		if i > 0 && strings.Contains(lines[i], markPlayByPlay) {
			if len(filtered) > 0 {
				filtered = filtered[:len(filtered)-1]
			}
			i++ // the trailing banner line
			continue
		}
		filtered = append(filtered, lines[i])
	}
	return strings.Join(filtered, "\n")
}

// splitOnce cuts s at the single occurrence of marker.
func splitOnce(s, marker string) (before, after string, err error) {
	parts := strings.Split(s, marker)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("unexpected section count: marker %q found %d times, want 1", marker, len(parts)-1)
	}
	return parts[0], parts[1], nil
}

// splitSections splits s on marker and requires exactly want parts.
func splitSections(s, marker string, want int) ([]string, error) {
	parts := strings.Split(s, marker)
	if len(parts) != want {
		return nil, fmt.Errorf("unexpected section count: marker %q found %d times, want %d", marker, len(parts)-1, want-1)
	}
	return parts, nil
}
