package gamebook

// Document is the structured form of one gamebook. Section order is fixed
// and mirrors the page order of the printed report.
type Document struct {
	Meta            Record          `json:"meta"`
	ScoreBoard      []Record        `json:"score_board"`
	Officials       Record          `json:"officials"`
	Touchdowns      []Record        `json:"touchdowns"`
	FieldGoals      []Record        `json:"field_goals"`
	TeamStats       []Record        `json:"team_stats"`
	IndividualStats IndividualStats `json:"individual_stats"`
	DefenseStats    SideTables      `json:"defense_stats"`
	Drives          Drives          `json:"drives"`
	Participation   *Participation  `json:"participation,omitempty"`
}

// SideTables pairs the visitor and home variants of one table.
type SideTables struct {
	Visitors []Record `json:"visitors"`
	Home     []Record `json:"home"`
}

// IndividualStats holds the per-player offense tables.
type IndividualStats struct {
	Passing   SideTables `json:"passing"`
	Rushing   SideTables `json:"rushing"`
	Receiving SideTables `json:"receiving"`
}

// Drives couples the per-team drive-summary tables with the tokenized
// play-by-play log.
type Drives struct {
	Summary    SideTables `json:"summary"`
	PlayByPlay []Drive    `json:"play_by_play"`
}

// Drive is one sustained possession: its ordered plays.
type Drive struct {
	Name  string      `json:"name"`
	Plays []PlayEvent `json:"plays"`
}

// Participation holds both sides' rosters.
type Participation struct {
	Visitors TeamRoster `json:"visitors"`
	Home     TeamRoster `json:"home"`
}
