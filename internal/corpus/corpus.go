// Package corpus walks a directory tree and yields the text files a scan
// run should process, filtered by include/exclude glob patterns and
// rejecting anything that is not valid UTF-8.
package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// File is one corpus member: its path, the glob that selected it, and its
// already-read, already-UTF-8-validated contents.
type File struct {
	Path        string
	RelPath     string
	Size        int64
	MatchedGlob string
	Data        []byte
}

// Result is one item off the walk: either a usable File or an error tied to
// a specific path (a stat/read failure, or a UTF-8 rejection).
type Result struct {
	File File
	Err  error
}

// DefaultIncludes is used when a run's configuration specifies none.
var DefaultIncludes = []string{"**/*.txt"}

// Walk recursively visits root and sends one Result per matching file on the
// returned channel, closing it when the walk completes or ctx is canceled.
// Sending begins before the walk finishes, so a consumer can start
// dispatching work immediately instead of waiting for the full list.
// logger receives a warning the moment a file is rejected or unreadable,
// ahead of whatever the dispatcher later folds into run statistics.
func Walk(ctx context.Context, root string, includes, excludes []string, logger logrus.FieldLogger) <-chan Result {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	out := make(chan Result)
	go func() {
		defer close(out)

		fail := func(err error) error {
			logger.WithError(err).Warn("corpus: skipping file")
			return send(ctx, out, Result{Err: err})
		}

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				return fail(fmt.Errorf("corpus: walking %s: %w", path, err))
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}

			glob, ok, err := matchAny(rel, includes)
			if err != nil {
				return fail(fmt.Errorf("corpus: invalid include glob: %w", err))
			}
			if !ok {
				return nil
			}
			excluded, err := excludedBy(rel, excludes)
			if err != nil {
				return fail(fmt.Errorf("corpus: invalid exclude glob: %w", err))
			}
			if excluded {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return fail(fmt.Errorf("corpus: stat %s: %w", path, err))
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fail(fmt.Errorf("corpus: reading %s: %w", path, err))
			}
			if !utf8.Valid(data) {
				return fail(fmt.Errorf("corpus: %s: not valid UTF-8", rel))
			}

			return send(ctx, out, Result{File: File{
				Path: path, RelPath: rel, Size: info.Size(),
				MatchedGlob: glob, Data: data,
			}})
		})

		if walkErr != nil && walkErr != ctx.Err() {
			err := fmt.Errorf("corpus: walk of %s: %w", root, walkErr)
			logger.WithError(err).Warn("corpus: walk aborted")
			select {
			case out <- Result{Err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return out
}

func send(ctx context.Context, out chan<- Result, r Result) error {
	select {
	case out <- r:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func matchAny(rel string, globs []string) (string, bool, error) {
	for _, g := range globs {
		ok, err := doublestar.Match(g, rel)
		if err != nil {
			return "", false, err
		}
		if ok {
			return g, true, nil
		}
	}
	return "", false, nil
}

func excludedBy(rel string, globs []string) (bool, error) {
	_, ok, err := matchAny(rel, globs)
	return ok, err
}
