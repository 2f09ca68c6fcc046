package seams

import (
	"sync"

	"github.com/textseams/seams/internal/boundary"
)

// Position is a byte offset paired with its 1-based line and column. The
// column counts Unicode scalar values, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func fromInternalPosition(p boundary.Position) Position {
	return Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// Span is a byte range plus the position of each endpoint. End is
// exclusive: the span covers bytes [Start.Offset, End.Offset).
type Span struct {
	Start, End Position
}

// DetectedSentence is one sentence found by a Detector scan: its 0-based
// index within the file, its span, and the raw bytes of that span (a view
// into the buffer passed to Scan). Once emitted it is immutable; its
// normalized text is computed lazily and cached on first use.
type DetectedSentence struct {
	index int
	span  Span
	raw   []byte

	normalizeOnce sync.Once
	normalized    string
}

func newDetectedSentence(s boundary.Sentence) *DetectedSentence {
	return &DetectedSentence{
		index: s.Index,
		span: Span{
			Start: fromInternalPosition(s.Span.Start),
			End:   fromInternalPosition(s.Span.End),
		},
		raw: s.Raw,
	}
}

// Index returns the sentence's 0-based position within the file.
func (d *DetectedSentence) Index() int { return d.index }

// Span returns the sentence's byte range and line/column endpoints.
func (d *DetectedSentence) Span() Span { return d.span }

// Raw returns the unnormalized bytes of the sentence, a view into the
// buffer originally passed to Scan.
func (d *DetectedSentence) Raw() []byte { return d.raw }

// Normalized returns the sentence's whitespace-collapsed, trimmed text.
// The result is computed once and cached; it is safe to call from
// multiple goroutines.
func (d *DetectedSentence) Normalized() string {
	d.normalizeOnce.Do(func() {
		d.normalized = boundary.Normalize(d.raw)
	})
	return d.normalized
}
