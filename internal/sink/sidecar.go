package sink

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/textseams/seams"
)

// SidecarSuffix is appended to a source file's path to form its sidecar
// output path.
const SidecarSuffix = ".seams.tsv"

// SidecarSink writes one tab-separated file per source, one line per
// sentence: index, normalized text, and the (start_line,start_col,
// end_line,end_col) span, each line terminated by a newline; a source with
// no sentences gets an empty file. The incremental cache does not read the
// sidecar back: a file counts as complete once its cache entry exists.
type SidecarSink struct {
	logger logrus.FieldLogger
}

// NewSidecarSink builds a SidecarSink. Beyond logger it holds no state:
// every write opens and closes its own file, so concurrent calls for
// distinct files never contend.
func NewSidecarSink(logger logrus.FieldLogger) *SidecarSink {
	return &SidecarSink{logger: logger}
}

func (s *SidecarSink) WriteFile(_ context.Context, file FileRecord, sentences []*seams.DetectedSentence) error {
	path := file.Path + SidecarSuffix
	f, err := os.Create(path)
	if err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("sink: failed to create sidecar")
		return fmt.Errorf("sink: creating sidecar %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, sent := range sentences {
		span := sent.Span()
		if _, err := fmt.Fprintf(w, "%d\t%s\t(%d,%d,%d,%d)\n",
			sent.Index(), sent.Normalized(),
			span.Start.Line, span.Start.Column, span.End.Line, span.End.Column,
		); err != nil {
			s.logger.WithError(err).WithField("path", path).Warn("sink: failed to write sidecar")
			return fmt.Errorf("sink: writing sidecar %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("sink: failed to flush sidecar")
		return fmt.Errorf("sink: flushing sidecar %s: %w", path, err)
	}
	return nil
}

func (s *SidecarSink) Close() error { return nil }
