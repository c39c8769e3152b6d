package export

import "github.com/fieldline/scoutbook/gamebook"

// sampleDocument builds a small but fully-populated document covering every
// sheet and section the exporters render.
func sampleDocument() *gamebook.Document {
	rec := func(pairs ...any) gamebook.Record {
		var r gamebook.Record
		for i := 0; i+1 < len(pairs); i += 2 {
			r.Set(pairs[i].(string), pairs[i+1])
		}
		return r
	}

	doc := &gamebook.Document{
		Meta: rec("League", "Premier Winter Football League", "Date", "2024-10-05", "Temp", "72F", "Wind", "5mph N"),
		ScoreBoard: []gamebook.Record{
			rec("Side", "Visitor", "Team", "Seagulls", "Final", 10),
			rec("Side", "Home", "Team", "Bearcats", "Final", 14),
		},
		Officials: rec("Referee", "J. Müller", "Head of Statistics", nil),
		Touchdowns: []gamebook.Record{
			rec("Index", "SG", "Qtr", "1", "Description", "Keller 15 yd catch | tipped"),
		},
		TeamStats: []gamebook.Record{
			rec("Statistic", "Total first downs", "Visitor", "22", "Home", "18"),
		},
	}

	doc.IndividualStats.Passing = gamebook.SideTables{
		Visitors: []gamebook.Record{rec("Index", "Mora", "Att", "30", "Yds", "280")},
		Home:     []gamebook.Record{rec("Index", "Lang", "Att", "25", "Yds", "195")},
	}
	doc.Drives.Summary.Home = []gamebook.Record{
		rec("index", "1", "How Obtained", "Kickoff", "How Given Up", "Punt"),
	}
	doc.Drives.PlayByPlay = []gamebook.Drive{
		{
			Name: "Drive 01",
			Plays: []gamebook.PlayEvent{
				{Possession: "SG", DownAndDistance: "1&10", YardLine: "@ SG25", Details: "pass <deep> to Keller & complete"},
			},
		},
	}
	doc.Participation = &gamebook.Participation{
		Visitors: gamebook.TeamRoster{
			Starter: []gamebook.RosterEntry{{FirstName: "K", LastName: "Keller", Position: "WR", Number: "81", StarterOrBench: "starter", Team: "Seagulls"}},
		},
		Home: gamebook.TeamRoster{
			Starter: []gamebook.RosterEntry{{FirstName: "T", LastName: "Vogt", Position: "RB", Number: "22", StarterOrBench: "starter", Team: "Bearcats"}},
			Bench:   []gamebook.RosterEntry{{FirstName: "B", LastName: "Brandt", Position: "LB", Number: "55", StarterOrBench: "bench", Team: "Bearcats"}},
		},
	}
	return doc
}
