package boundary

import "strings"

// Normalize collapses every maximal run of space, tab, '\n' and '\r' bytes
// in raw to a single ASCII space, trims the result, and otherwise preserves
// every byte verbatim. It is a pure function of raw: calling it twice on
// its own output returns the same string (idempotent).
func Normalize(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))

	inRun := false
	for _, c := range raw {
		if isNormalizedSpace(c) {
			inRun = true
			continue
		}
		if inRun && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inRun = false
		b.WriteByte(c)
	}
	return strings.TrimRight(b.String(), " ")
}

func isNormalizedSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
