package boundary

import "github.com/textseams/seams/internal/matcher"

// Build compiles the pattern table and its backing multi-pattern matcher
// and constructs the abbreviation set, returning a ready-to-use Assembler.
// It is the one place pattern-construction failure can surface; per the
// package's failure semantics, that failure is meant to be fatal to the
// calling process, not retried or recovered from mid-scan.
func Build() (*Assembler, error) {
	table := buildTable()

	sources := make([]matcher.Source, len(table))
	for i, p := range table {
		states := make([]int, len(p.ValidIn))
		for j, s := range p.ValidIn {
			states[j] = int(s)
		}
		sources[i] = matcher.Source{ID: p.ID, States: states, Pattern: p.Regex}
	}

	m, err := matcher.Compile(sources)
	if err != nil {
		return nil, err
	}

	return NewAssembler(table, m, NewAbbreviationSet()), nil
}
