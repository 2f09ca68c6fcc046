package seams

import "github.com/textseams/seams/internal/boundary"

// Detector holds the compiled pattern table, multi-pattern matcher, and
// abbreviation set needed to scan text for sentence boundaries. It is
// built once per process (BuildDetector) and is safe for concurrent use by
// any number of goroutines; see the package documentation for the
// concurrency model.
type Detector struct {
	assembler *boundary.Assembler
}

// BuildDetector compiles the pattern table and its backing matcher. This
// is the only place construction can fail: an invalid pattern table is a
// fatal, startup-time error, never a per-scan one.
func BuildDetector() (*Detector, error) {
	assembler, err := boundary.Build()
	if err != nil {
		return nil, err
	}
	return &Detector{assembler: assembler}, nil
}

// MustBuildDetector is BuildDetector, panicking on error. Useful for
// package-level detector variables whose pattern table is known valid.
func MustBuildDetector() *Detector {
	d, err := BuildDetector()
	if err != nil {
		panic("seams: BuildDetector: " + err.Error())
	}
	return d
}

// Scan runs one complete, synchronous pass over input and returns every
// detected sentence in order. input must be valid UTF-8; seams does not
// perform that validation itself (see the package documentation for the
// corpus walker, which does). Scan never returns an error: any byte
// sequence produces a valid, possibly empty, sentence sequence.
func (d *Detector) Scan(input []byte) []*DetectedSentence {
	raw := d.assembler.Scan(input)
	out := make([]*DetectedSentence, len(raw))
	for i, s := range raw {
		out[i] = newDetectedSentence(s)
	}
	return out
}
