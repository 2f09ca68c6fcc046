package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/textseams/seams"
)

// dialect captures the handful of places SQLite, MySQL and Postgres syntax
// diverge for this sink's two tables.
type dialect struct {
	driverName  string
	filesDDL    string
	sentDDL     string
	placeholder func(n int) string
}

var dialects = map[string]dialect{
	"sqlite": {
		driverName: "sqlite",
		filesDDL: `CREATE TABLE IF NOT EXISTS files (
			file_id INTEGER PRIMARY KEY,
			path TEXT NOT NULL
		)`,
		sentDDL: `CREATE TABLE IF NOT EXISTS sentences (
			file_id INTEGER NOT NULL,
			sentence_id INTEGER NOT NULL,
			start_byte INTEGER NOT NULL,
			end_byte INTEGER NOT NULL
		)`,
		placeholder: func(int) string { return "?" },
	},
	"mysql": {
		driverName: "mysql",
		filesDDL: `CREATE TABLE IF NOT EXISTS files (
			file_id INT PRIMARY KEY,
			path TEXT NOT NULL
		)`,
		sentDDL: `CREATE TABLE IF NOT EXISTS sentences (
			file_id INT NOT NULL,
			sentence_id INT NOT NULL,
			start_byte INT NOT NULL,
			end_byte INT NOT NULL
		)`,
		placeholder: func(int) string { return "?" },
	},
	"postgres": {
		driverName: "postgres",
		filesDDL: `CREATE TABLE IF NOT EXISTS files (
			file_id INTEGER PRIMARY KEY,
			path TEXT NOT NULL
		)`,
		sentDDL: `CREATE TABLE IF NOT EXISTS sentences (
			file_id INTEGER NOT NULL,
			sentence_id INTEGER NOT NULL,
			start_byte INTEGER NOT NULL,
			end_byte INTEGER NOT NULL
		)`,
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	},
}

// schemeDialect maps a DSN's scheme prefix to one of the dialects above and
// returns the string to hand to sql.Open: the remainder after the scheme for
// sqlite and mysql, the full URL for postgres, mirroring the scheme-based
// adapter selection a multi-dialect DDL tool uses to pick a driver.
func schemeDialect(dsn string) (dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return dialects["sqlite"], strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "mysql://"):
		return dialects["mysql"], strings.TrimPrefix(dsn, "mysql://"), nil
	case strings.HasPrefix(dsn, "postgres://"):
		return dialects["postgres"], dsn, nil
	default:
		return dialect{}, "", fmt.Errorf("sink: dsn %q has no recognized scheme (sqlite://, mysql://, postgres://)", dsn)
	}
}

// SQLSink writes files(file_id, path) and sentences(file_id, sentence_id,
// start_byte, end_byte) rows, one transaction per WriteFile call.
type SQLSink struct {
	db     *sql.DB
	d      dialect
	logger logrus.FieldLogger

	mu sync.Mutex
}

// NewSQLSink opens a database connection selected by dsn's scheme and
// ensures both tables exist.
func NewSQLSink(dsn string, logger logrus.FieldLogger) (*SQLSink, error) {
	d, rest, err := schemeDialect(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driverName, rest)
	if err != nil {
		return nil, fmt.Errorf("sink: opening %s database: %w", d.driverName, err)
	}
	if _, err := db.Exec(d.filesDDL); err != nil {
		return nil, fmt.Errorf("sink: creating files table: %w", err)
	}
	if _, err := db.Exec(d.sentDDL); err != nil {
		return nil, fmt.Errorf("sink: creating sentences table: %w", err)
	}

	logger.WithField("driver", d.driverName).Info("sink: tables ready")
	return &SQLSink{db: db, d: d, logger: logger}, nil
}

func (s *SQLSink) WriteFile(ctx context.Context, file FileRecord, sentences []*seams.DetectedSentence) error {
	// Writers for distinct files still share one *sql.DB; database/sql pools
	// its own connections, but the files-row insert plus the bulk sentence
	// insert must land in one transaction, hence the mutex around the two
	// statements rather than around the whole connection.
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sink: beginning transaction for %s: %w", file.Path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO files (file_id, path) VALUES (%s, %s)", s.d.placeholder(1), s.d.placeholder(2)),
		file.FileID, file.Path,
	); err != nil {
		return fmt.Errorf("sink: inserting file row for %s: %w", file.Path, err)
	}

	insertSentence := fmt.Sprintf(
		"INSERT INTO sentences (file_id, sentence_id, start_byte, end_byte) VALUES (%s, %s, %s, %s)",
		s.d.placeholder(1), s.d.placeholder(2), s.d.placeholder(3), s.d.placeholder(4),
	)
	for i, sent := range sentences {
		span := sent.Span()
		if _, err := tx.ExecContext(ctx, insertSentence, file.FileID, i+1, span.Start.Offset, span.End.Offset); err != nil {
			return fmt.Errorf("sink: inserting sentence row for %s: %w", file.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sink: committing transaction for %s: %w", file.Path, err)
	}
	return nil
}

func (s *SQLSink) Close() error {
	return s.db.Close()
}
