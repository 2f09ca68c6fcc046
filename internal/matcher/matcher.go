// Package matcher wraps coregex's compiled regular expressions into the
// multi-pattern boundary matcher: given a priority-ordered list of regex
// sources, it compiles one coregex.Regex per entry and, for a scan
// position, reports the leftmost match across the subset of patterns that
// are live for the caller's current state, breaking ties by ascending
// pattern id exactly as coregex.Regex.Find breaks ties within a single
// pattern (leftmost, then by construction order).
//
// coregex has no RegexSet-style "which of N patterns matched" API of its
// own (see its top-level package documentation); this package supplies
// that behavior on top of the public per-pattern Regex type, which is
// itself a single-pass, ReDoS-safe, UTF-8-aware matcher.
package matcher

import (
	"fmt"

	"github.com/coregx/coregex"
)

// Source describes one pattern to compile: its dense id, the states it is
// live in (as opaque small integers owned by the caller), and its regex.
type Source struct {
	ID      int
	States  []int
	Pattern string
}

// Matcher is a compiled, immutable multi-pattern matcher. It is safe for
// concurrent use: the underlying coregex.Regex values are read-only after
// Compile returns, and Next takes no matcher-owned mutable state.
type Matcher struct {
	compiled []*coregex.Regex
	byState  map[int][]int // state -> pattern indices, in priority order
}

// Compile builds a Matcher from a priority-ordered list of sources. The
// list's order is the tie-break order: entry i outranks entry j for i < j.
func Compile(sources []Source) (*Matcher, error) {
	m := &Matcher{
		compiled: make([]*coregex.Regex, len(sources)),
		byState:  make(map[int][]int),
	}
	for i, s := range sources {
		re, err := coregex.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("matcher: compiling pattern %d (%s): %w", s.ID, s.Pattern, err)
		}
		m.compiled[i] = re
		for _, st := range s.States {
			m.byState[st] = append(m.byState[st], i)
		}
	}
	return m, nil
}

// Match is one candidate boundary: the byte range it occupies in the
// haystack passed to Next, and the index of the winning source (into the
// slice originally passed to Compile).
type Match struct {
	Start, End int
	Index      int
}

// Next returns the leftmost match, among the patterns live for state,
// starting at or after from in input. Ties (two patterns matching at the
// same start offset) are broken in favor of the lower index. It reports
// false if no live pattern matches anywhere at or after from.
func (m *Matcher) Next(input []byte, from int, state int) (Match, bool) {
	live := m.byState[state]
	if len(live) == 0 || from >= len(input) {
		return Match{}, false
	}

	best := Match{Start: -1}
	for _, idx := range live {
		loc := m.compiled[idx].FindIndex(input[from:])
		if loc == nil {
			continue
		}
		start, end := from+loc[0], from+loc[1]
		if best.Start == -1 || start < best.Start || (start == best.Start && idx < best.Index) {
			best = Match{Start: start, End: end, Index: idx}
		}
	}
	if best.Start == -1 {
		return Match{}, false
	}
	return best, true
}
