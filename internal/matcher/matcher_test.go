package matcher

import "testing"

func TestNext_LeftmostMatch(t *testing.T) {
	m, err := Compile([]Source{
		{ID: 0, States: []int{0}, Pattern: `foo`},
		{ID: 1, States: []int{0}, Pattern: `bar`},
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	match, ok := m.Next([]byte("xx bar yy foo zz"), 0, 0)
	if !ok {
		t.Fatal("Next() found no match, want one")
	}
	if match.Index != 1 {
		t.Errorf("Next() index = %d, want 1 (bar, leftmost)", match.Index)
	}
	if match.Start != 3 || match.End != 6 {
		t.Errorf("Next() span = [%d,%d), want [3,6)", match.Start, match.End)
	}
}

func TestNext_TieBreaksByLowerIndex(t *testing.T) {
	// Both patterns can match starting at the same offset; the one with
	// the lower index (higher priority) must win.
	m, err := Compile([]Source{
		{ID: 0, States: []int{0}, Pattern: `ab`},
		{ID: 1, States: []int{0}, Pattern: `a`},
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	match, ok := m.Next([]byte("ab"), 0, 0)
	if !ok {
		t.Fatal("Next() found no match, want one")
	}
	if match.Index != 0 {
		t.Errorf("Next() index = %d, want 0 (tie broken by lower index)", match.Index)
	}
}

func TestNext_StateFiltering(t *testing.T) {
	m, err := Compile([]Source{
		{ID: 0, States: []int{0}, Pattern: `foo`},
		{ID: 1, States: []int{1}, Pattern: `bar`},
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if _, ok := m.Next([]byte("bar"), 0, 0); ok {
		t.Error("Next() matched a pattern not live in the requested state")
	}
	if match, ok := m.Next([]byte("bar"), 0, 1); !ok || match.Index != 1 {
		t.Error("Next() failed to match a pattern live in the requested state")
	}
}

func TestNext_NoMatch(t *testing.T) {
	m, err := Compile([]Source{{ID: 0, States: []int{0}, Pattern: `zzz`}})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if _, ok := m.Next([]byte("nothing here"), 0, 0); ok {
		t.Error("Next() reported a match where there was none")
	}
}

func TestNext_FromOffset(t *testing.T) {
	m, err := Compile([]Source{{ID: 0, States: []int{0}, Pattern: `a`}})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	match, ok := m.Next([]byte("a a a"), 2, 0)
	if !ok {
		t.Fatal("Next() found no match, want one")
	}
	if match.Start != 2 {
		t.Errorf("Next() start = %d, want 2 (scan must not look before from)", match.Start)
	}
}

func TestCompile_InvalidPattern(t *testing.T) {
	if _, err := Compile([]Source{{ID: 0, States: []int{0}, Pattern: `(`}}); err == nil {
		t.Error("Compile() did not error on an invalid pattern")
	}
}
