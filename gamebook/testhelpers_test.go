package gamebook

// Shared test helpers and page fixtures for the gamebook package.

import (
	"strings"
	"testing"
)

// ---- assertion helpers -----------------------------------------------------

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain %q\ngot: %s", want, got)
	}
}

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// assertField checks a record field by key.
func assertField(t *testing.T, rec Record, key string, want any) {
	t.Helper()
	got, ok := rec.Get(key)
	if !ok {
		t.Fatalf("record has no field %q (keys: %v)", key, rec.Keys())
	}
	if got != want {
		t.Errorf("field %q: got %v, want %v", key, got, want)
	}
}

// ---- page fixtures -----------------------------------------------------------

// Fixture pages mirror the line-per-token shape PDF text extraction produces
// for the fixed report layout: the visiting Seagulls (SG) at the hosting
// Bearcats (BC).

const fixtureHeaderPage = "Premier Winter Football League\n" +
	"Date: 2024-10-05\n" +
	"Stadium: Riverside Park\n" +
	"Attendance: 10512\n" +
	"Score by Quarters\n" +
	"1st\n2nd\n3rd\n4th\nOT\nFinal\n" +
	"Visitor\nSeagulls\n7\n0\n3\n0\n0\n10\n" +
	"Home\nBearcats\n0\n7\n0\n7\n0\n14\n" +
	"Scoring Plays\n" +
	"Team\nQtr\nTime\nDescription\nVisitor\nHome\n" +
	"SG\n1\n12:45\nKeller 15 yd catch from Mora\n7\n0\n" +
	"BC\n2\n08:02\nVogt 3 yd run\n7\n7\n" +
	"Field\nGoals\n" +
	"Team\nQtr\nTime\nDescription\nVisitor\nHome\n" +
	"SG\n3\n03:10\nKeller 32 yd field goal\n10\n7\n" +
	"Officials\n" +
	"Referee:\nJ. Hartmann\n" +
	"Umpire:\nC. Weber\n" +
	"Head of Statistics:\n" +
	"Weather\n" +
	"Temp: 72F, Wind: 5mph N\n" +
	"Humidity: 40%\n"

const fixtureTeamTotalsPage = "Riverside Park\n" +
	"Official Statistics\n" +
	"Seagulls at Bearcats\n" +
	"2024-10-05\n" +
	"Final Score\n" +
	"10\n" +
	"14\n" +
	"Totals\n" +
	"TOTAL FIRST DOWNS\n22\n18\n" +
	"NET YARDS OVERALL\n350\n290\n" +
	"AVERAGE GAIN PER PLAY\n5.4\n4.8\n" +
	"FUMBLES LOST\n" // trailing label flushes the last group

const fixtureOffensePage = "Individual Offense\n" +
	"Passing\n" +
	"Att\nCmp\nYds\nTD\nINT\nLong\nSack\nRate\nQBR\n" +
	"Mora\n30\n22\n280\n2\n1\n45\n2\n98.5\n101.2\n" +
	"Passing\n" +
	"Att\nCmp\nYds\nTD\nINT\nLong\nSack\nRate\nQBR\n" +
	"Lang\n25\n15\n195\n1\n0\n38\n1\n88.1\n90.4\n" +
	"Rushing\n" +
	"Att\nYds\nAvg\nLong\nTD\n" +
	"Dreyer\n14\n70\n5.0\n18\n0\n" +
	"Rushing\n" +
	"Att\nYds\nAvg\nLong\nTD\n" +
	"Vogt\n18\n95\n5.3\n22\n1\n" +
	"Receiving\n" +
	"Rec\nYds\nAvg\nLong\nTD\n" +
	"Keller\n6\n88\n14.7\n32\n1\n" +
	"Receiving\n" +
	"Rec\nYds\nAvg\nLong\nTD\n" +
	"Arnold\n5\n62\n12.4\n21\n0\n"

const fixtureDefensePage = "Individual Defense\n" +
	"Defense\n" +
	"Solo\nAst\nTot\nTFL\nSacks\nINT\nPD\nFF\nFR\nBLK\nQBH\nTDS\n" +
	"Brandt\n5\n3\n8\n1\n1.0\n0\n2\n1\n0\n0\n1\n0\n" +
	"Defense\n" +
	"Solo\nAst\nTot\nTFL\nSacks\nINT\nPD\nFF\nFR\nBLK\nQBH\nTDS\n" +
	"Neumann\n6\n2\n8\n2\n0.0\n1\n1\n0\n1\n0\n0\n0\n"

const fixtureDriveSummaryPage = "Drive Chart\n" +
	"How Given\n" +
	"Start QTR\nStart Time\nEnd QTR\nEnd Time\nPoss. Time\nHow Obtained\nStart Yrd\nNo. Plays\nNet Yds\nEnd Yrd\n" +
	"1\n1\n14:52\n1\n12:10\n02:42\nKickoff\nBC25\n6\n45\nSG30\nPunt\n" +
	"How Given\n" +
	"Start QTR\nStart Time\nEnd QTR\nEnd Time\nPoss. Time\nHow Obtained\nStart Yrd\nNo. Plays\nNet Yds\nEnd Yrd\n" +
	"1\n1\n12:10\n1\n09:33\n02:37\nPunt\nSG20\n5\n38\nBC42\nDowns\n"

const fixturePlayByPlayPage = "First Quarter\n" +
	"Play-by-Play Summary\n" +
	"Quarter 1\n" +
	"Drive Start\n" +
	"Bearcats Spot: BC25 Clock: 14:52 Drive: 1\n" +
	"BC\n" +
	"@ SG35\n" +
	"Keller kicks 65 yards, Vogt return 25 yards\n" +
	"BC\n" +
	"1&10\n" +
	"@ BC25\n" +
	"Mora throw complete to Keller for 15 yards\n" +
	"BC\n" +
	"2&5\n" +
	"@ BC40\n" +
	"Vogt run for 3 yards\n" +
	"Plays 6 Yards 45 TOP 02:42 SCORE 0-0\n" +
	"Drive Start\n" +
	"Seagulls Spot: SG30 Clock: 12:10 Drive: 2\n" +
	"SG\n" +
	"1&10\n" +
	"@ SG30\n" +
	"Mora throw incomplete\n" +
	"SG\n" +
	"2&10\n" +
	"@ SG30\n" +
	"Long throw to Arnold\n" +
	"for 22 yards SG\n" +
	"Plays 3 Yards 22 TOP 01:30 SCORE 0-0\n"

const fixtureParticipationPage = "Participation Report\n" +
	"Bearcats\n" +
	"First\nLast Name\nPosition\n#\n" +
	"T\nVogt\nRB\n22\n" +
	"M\nMora\nQB\n7\n" +
	"#\n" +
	"B\nBrandt\nLB\n55\n" +
	"Participation Report\n" +
	"Seagulls\n" +
	"First\nLast Name\nPosition\n#\n" +
	"K\nKeller\nWR\n81\n" +
	"#\n" +
	"A\nArnold\nTE\n88\n"

// fixturePages assembles the full six-page gamebook.
func fixturePages() []string {
	return []string{
		fixtureHeaderPage,
		fixtureTeamTotalsPage,
		fixtureOffensePage,
		fixtureDefensePage,
		fixtureDriveSummaryPage,
		fixturePlayByPlayPage + fixtureParticipationPage,
	}
}
