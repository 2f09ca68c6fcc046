package boundary

import "strings"

// AbbreviationSet is a closed set of tokens that, when they immediately
// precede a candidate NarrativeGestureBoundary, suppress that boundary.
// It is immutable and shared across every scan.
type AbbreviationSet struct {
	members map[string]struct{}
}

// NewAbbreviationSet builds the closed abbreviation set: titles,
// measurements, time-of-day, geographic compounds, academic abbreviations,
// and single/double capital compass directions and initials.
func NewAbbreviationSet() *AbbreviationSet {
	words := []string{
		// Titles
		"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Sr.", "Jr.",
		// Measurements
		"ft.", "in.", "lbs.", "oz.", "mi.", "km.", "deg.",
		// Time
		"a.m.", "p.m.",
		// Geographic compounds
		"U.S.A.", "U.K.", "N.Y.C.", "L.A.", "D.C.",
		// Academic
		"etc.", "vs.", "et al.",
		// Compass directions and initials: single capitals and the four
		// intercardinal combinations.
		"N.", "S.", "E.", "W.",
		"NE.", "NW.", "SE.", "SW.",
	}
	set := &AbbreviationSet{members: make(map[string]struct{}, len(words))}
	for _, w := range words {
		set.members[w] = struct{}{}
	}
	return set
}

// Contains reports whether token, after stripping any surrounding quote
// characters, is a member of the set.
func (a *AbbreviationSet) Contains(token string) bool {
	token = strings.Trim(token, `"'“”‘’`)
	_, ok := a.members[token]
	return ok
}
