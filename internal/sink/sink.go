// Package sink implements the two output destinations a scan run can write
// detected sentences to: a tab-separated sidecar file per source, or a
// tabular relation in a SQL database.
package sink

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/textseams/seams"
)

// FileRecord identifies the source file a batch of sentences belongs to.
type FileRecord struct {
	// FileID is a dense, run-scoped integer; only the tabular sink uses it.
	FileID int
	Path   string
}

// Sink accepts one file's detected sentences at a time. Implementations
// must be safe for concurrent use by multiple dispatcher workers, each
// writing a different file.
type Sink interface {
	WriteFile(ctx context.Context, file FileRecord, sentences []*seams.DetectedSentence) error
	Close() error
}

// Open builds a Sink from a configuration kind ("sidecar" or "sql") and,
// for the tabular sink, a DSN whose scheme selects the SQL dialect. logger
// is threaded into the constructed sink for its own event logging.
func Open(kind, dsn string, logger logrus.FieldLogger) (Sink, error) {
	switch kind {
	case "", "sidecar":
		return NewSidecarSink(logger), nil
	case "sql":
		return NewSQLSink(dsn, logger)
	default:
		return nil, fmt.Errorf("sink: unknown kind %q", kind)
	}
}
