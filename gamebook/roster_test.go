package gamebook

import "testing"

const rosterBlock = "Bearcats\nStarters\nLast Name\nPosition\n#\n" +
	"T\nVogt\nRB\n22\n" +
	"M\nMora\nQB\n7\n" +
	"Bench\nLast Name\nPosition\n#\n" +
	"B\nBrandt\nLB\n55"

func TestParseRoster(t *testing.T) {
	roster, err := parseRoster(rosterBlock, "Bearcats", "home")
	assertNoErr(t, err)

	assertEqual(t, len(roster.Starter), 2)
	assertEqual(t, len(roster.Bench), 1)

	vogt := roster.Starter[0]
	assertEqual(t, vogt, RosterEntry{
		FirstName:      "T",
		LastName:       "Vogt",
		Position:       "RB",
		Number:         "22",
		StarterOrBench: "starter",
		Team:           "Bearcats",
	})

	assertEqual(t, roster.Starter[1].LastName, "Mora")

	brandt := roster.Bench[0]
	assertEqual(t, brandt.Number, "55")
	assertEqual(t, brandt.StarterOrBench, "bench")
	assertEqual(t, brandt.Team, "Bearcats")
}

func TestParseRoster_MissingBenchTableIsFatal(t *testing.T) {
	block := "Bearcats\nStarters\nLast Name\nPosition\n#\nT\nVogt\nRB\n22"

	_, err := parseRoster(block, "Bearcats", "home")
	assertErr(t, err)
	assertContains(t, err.Error(), "unexpected section count")
	assertContains(t, err.Error(), "home")
}
