package boundary

import "testing"

func TestAdvance_LineAndColumnTracking(t *testing.T) {
	input := []byte("ab\ncd\r\nef")
	// offsets: a=0 b=1 \n=2 c=3 d=4 \r=5 \n=6 e=7 f=8
	cases := []struct {
		to           int
		line, column int
	}{
		{0, 1, 1},
		{2, 1, 3},  // before the \n, after "ab"
		{3, 2, 1},  // just after \n
		{5, 2, 3},  // before \r, after "cd"
		{6, 2, 4},  // \r not yet paired with the \n past the cut, counts alone
		{7, 3, 1},  // just after \r\n
		{9, 3, 3},  // after "ef"
	}
	for _, c := range cases {
		p := advance(startPosition(), input, c.to)
		if p.Line != c.line || p.Column != c.column {
			t.Errorf("advance(..., %d) = {Line:%d Column:%d}, want {Line:%d Column:%d}",
				c.to, p.Line, p.Column, c.line, c.column)
		}
	}
}

func TestAdvance_UnicodeScalarColumns(t *testing.T) {
	input := []byte("café")
	p := advance(startPosition(), input, len(input))
	if p.Column != 5 {
		t.Errorf("Column = %d, want 5 (4 scalar values plus the starting column)", p.Column)
	}
}

func TestAdvance_IsIncremental(t *testing.T) {
	input := []byte("one two\nthree four")
	whole := advance(startPosition(), input, len(input))

	mid := advance(startPosition(), input, 8)
	stepped := advance(mid, input, len(input))

	if stepped != whole {
		t.Errorf("stepped advance = %+v, want %+v", stepped, whole)
	}
}
