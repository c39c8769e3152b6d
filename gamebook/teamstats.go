package gamebook

import (
	"strings"
	"unicode"
)

// teamStatsBoilerplate is the fixed number of page-header lines before the
// first statistic on the team-totals page.
const teamStatsBoilerplate = 8

// groupStatLines folds the team-totals page into groups of
// [statistic name, visitor value, home value]. A letter-dominant line starts
// a new group; every other line is a value appended to the current one.
func groupStatLines(page string) [][]string {
	lines := strings.Split(page, "\n")
	if len(lines) > teamStatsBoilerplate {
		lines = lines[teamStatsBoilerplate:]
	} else {
		lines = nil
	}

	var groups [][]string
	var current []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if letterDominant(line) {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
		}
		current = append(current, line)
	}
	return groups
}

// parseTeamStats converts line groups into records of statistic name,
// visitor value and home value. A page that collapses into a single group is
// a layout degeneracy; whatever stray tokens were captured are discarded and
// both values are forced to null.
func parseTeamStats(page string) []Record {
	groups := groupStatLines(page)

	var result []Record
	for _, group := range groups {
		var rec Record
		rec.Set("Statistic", capitalize(strings.ToLower(group[0])))
		rec.Set("Visitor", valueAt(group, 1))
		rec.Set("Home", valueAt(group, 2))
		result = append(result, rec)
	}

	if len(result) == 1 {
		result[0].Set("Visitor", nil)
		result[0].Set("Home", nil)
	}
	return result
}

func valueAt(group []string, i int) any {
	if i < len(group) {
		return group[i]
	}
	return nil
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	for i, r := range s {
		if i == 0 {
			return string(unicode.ToUpper(r)) + s[len(string(r)):]
		}
	}
	return s
}
