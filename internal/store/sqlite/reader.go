package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"market-holidays/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// Reader provides read-only access to an exported holiday snapshot.
type Reader struct {
	db *sql.DB
}

// NewReader opens a SQLite connection for reading.
func NewReader(dbPath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open reader: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)

	slog.Info("[sqlite-reader] opened", "path", dbPath)
	return &Reader{db: db}, nil
}

// ReadYear returns ex's holidays in year, ascending by date.
func (r *Reader) ReadYear(ctx context.Context, ex model.Exchange, year int) ([]model.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, description
		FROM holidays
		WHERE exchange = ? AND year = ?
		ORDER BY date ASC
	`, string(ex), year)
	if err != nil {
		return nil, fmt.Errorf("sqlite query holidays: %w", err)
	}
	return scanHolidays(rows)
}

// ReadAll returns every holiday of ex, ascending by date.
func (r *Reader) ReadAll(ctx context.Context, ex model.Exchange) ([]model.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, description
		FROM holidays
		WHERE exchange = ?
		ORDER BY date ASC
	`, string(ex))
	if err != nil {
		return nil, fmt.Errorf("sqlite query holidays: %w", err)
	}
	return scanHolidays(rows)
}

// IsHoliday reports whether d is stored for ex.
func (r *Reader) IsHoliday(ctx context.Context, ex model.Exchange, d model.Date) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM holidays WHERE exchange = ? AND date = ?
	`, string(ex), d.String()).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("sqlite check holiday: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored rows per exchange.
func (r *Reader) Count(ctx context.Context) (map[model.Exchange]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT exchange, COUNT(*) FROM holidays GROUP BY exchange
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite count: %w", err)
	}
	defer rows.Close()

	out := make(map[model.Exchange]int)
	for rows.Next() {
		var ex string
		var n int
		if err := rows.Scan(&ex, &n); err != nil {
			return nil, fmt.Errorf("sqlite scan count: %w", err)
		}
		out[model.Exchange(ex)] = n
	}
	return out, rows.Err()
}

// Close closes the reader connection.
func (r *Reader) Close() error {
	return r.db.Close()
}

func scanHolidays(rows *sql.Rows) ([]model.Holiday, error) {
	defer rows.Close()

	out := []model.Holiday{}
	for rows.Next() {
		var ds, desc string
		if err := rows.Scan(&ds, &desc); err != nil {
			return nil, fmt.Errorf("sqlite scan holidays: %w", err)
		}
		d, err := model.ParseDate(ds)
		if err != nil {
			return nil, fmt.Errorf("sqlite row %q: %w", ds, err)
		}
		out = append(out, model.Holiday{Date: d, Description: desc})
	}
	return out, rows.Err()
}
