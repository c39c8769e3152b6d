package gamebook

import (
	"fmt"
	"strings"
)

// weatherWindSep joins temperature and wind on one printed line; the two are
// stored as separate fields.
const weatherWindSep = ", Wind:"

// parseMetadata builds the meta record from the header block and the weather
// block of the first page. The first line of the header block is the league
// name; every later "key: value" line is stored verbatim, trimmed.
func parseMetadata(metaBlock, weatherBlock string) (Record, error) {
	var meta Record

	lines := strings.Split(strings.TrimSpace(metaBlock), "\n")
	meta.Set("League", strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	for _, line := range strings.Split(strings.TrimSpace(weatherBlock), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "Temp" {
			temp, wind, ok := strings.Cut(value, weatherWindSep)
			if !ok {
				return Record{}, fmt.Errorf("weather: Temp line %q missing %q separator", line, weatherWindSep)
			}
			meta.Set("Temp", strings.TrimSpace(temp))
			meta.Set("Wind", strings.TrimSpace(wind))
			continue
		}
		meta.Set(key, value)
	}

	return meta, nil
}

// parseOfficials reads the officials block: a line ending in ":" names a
// role, the following line names the person. "Head of Statistics" is often
// printed with no name and defaults to null.
func parseOfficials(block string) Record {
	var officials Record

	currentTitle := ""
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		if strings.HasSuffix(line, ":") {
			currentTitle = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			if currentTitle == "Head of Statistics" {
				officials.Set(currentTitle, nil)
			}
			continue
		}
		if currentTitle != "" {
			officials.Set(currentTitle, strings.TrimSpace(line))
		}
	}
	return officials
}
