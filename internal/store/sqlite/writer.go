package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"market-holidays/internal/holidays"

	_ "github.com/mattn/go-sqlite3"
)

// WriterConfig configures the SQLite writer.
type WriterConfig struct {
	DBPath string // path to SQLite database file, e.g. "data/holidays.db"
}

// Writer snapshots holiday calendars into a SQLite file.
type Writer struct {
	db *sql.DB
}

// DB returns the underlying sql.DB for health checks.
func (w *Writer) DB() *sql.DB { return w.db }

// Name identifies this exporter in logs and metrics.
func (w *Writer) Name() string { return "sqlite" }

// New opens (or creates) the database in WAL mode and ensures the schema.
func New(cfg WriterConfig) (*Writer, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// Single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	slog.Info("[sqlite] opened database", "path", cfg.DBPath)
	return &Writer{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS holidays (
			exchange    TEXT    NOT NULL,
			date        TEXT    NOT NULL,
			year        INTEGER NOT NULL,
			description TEXT    NOT NULL,
			PRIMARY KEY (exchange, date)
		);

		CREATE INDEX IF NOT EXISTS idx_holidays_year ON holidays (exchange, year);
	`)
	return err
}

// Export replaces each exchange's rows with the registry contents inside a
// single transaction. Returns the number of rows written.
func (w *Writer) Export(ctx context.Context, reg *holidays.Registry) (int, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO holidays (exchange, date, year, description)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("sqlite prepare: %w", err)
	}
	defer stmt.Close()

	total := 0
	for _, ex := range reg.Exchanges() {
		cal, _ := reg.Calendar(ex)
		if _, err := tx.ExecContext(ctx, `DELETE FROM holidays WHERE exchange = ?`, string(ex)); err != nil {
			return 0, fmt.Errorf("sqlite delete %s: %w", ex, err)
		}
		for _, h := range cal.All() {
			if _, err := stmt.ExecContext(ctx, string(ex), h.Date.String(), h.Date.Year, h.Description); err != nil {
				return 0, fmt.Errorf("sqlite insert %s %s: %w", ex, h.Date, err)
			}
			total++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite commit: %w", err)
	}
	return total, nil
}

// Close closes the database.
func (w *Writer) Close() error {
	return w.db.Close()
}
