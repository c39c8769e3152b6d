package gamebook

import "unicode"

// letterDominant reports whether a text line is mostly letters rather than
// digits and punctuation. Statistic names ("NET YARDS RUSHING") pass; value
// lines ("350", "22-45-1") do not. Ties count as not letter-dominant.
func letterDominant(line string) bool {
	letters, digits, specials := 0, 0, 0
	for _, r := range line {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		default:
			specials++
		}
	}
	return letters > digits+specials
}
