// Package seams implements a dialog-aware sentence boundary detector for
// large literary corpora.
//
// seams ingests UTF-8 text (typically a Project Gutenberg-style book file)
// and emits, for each sentence it detects, a byte/position span into the
// original input plus lazily-normalized text. Its core is a compiled
// multi-pattern automaton (internal/matcher, built on
// github.com/coregx/coregex) driven by a small dialog state machine
// (internal/boundary) that distinguishes narrative prose from quoted
// dialog and parenthetical asides, so abbreviations, nested quotes, and
// attributive clauses ("she said") don't produce false sentence breaks.
//
// Basic usage:
//
//	det, err := seams.BuildDetector()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range det.Scan(input) {
//	    fmt.Println(s.Normalized())
//	}
//
// A Detector is built once per process and is safe for concurrent use:
// its compiled pattern table, matcher, and abbreviation set are immutable
// after BuildDetector returns. Each call to Scan is synchronous,
// single-threaded, and owns its own mutable state, so independent scans
// (e.g. one per file in a worker pool) may run concurrently against the
// same Detector without coordination.
package seams
