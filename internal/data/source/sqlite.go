package source

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/colonyops/eventboard/internal/core/event"
)

//go:embed schema.sql
var schemaSQL string

const busyTimeout = 5000 // milliseconds

const (
	selectEvents = `SELECT id, title, date, status, COALESCE(description, '') AS description
FROM events ORDER BY rowid`
	insertEvent = `INSERT INTO events (id, title, date, status, description)
VALUES (:id, :title, :date, :status, :description)`
)

// eventRow mirrors a row of the events table.
type eventRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Date        string `db:"date"`
	Status      string `db:"status"`
	Description string `db:"description"`
}

// SQLite loads events from the events table of a SQLite database. The
// database is opened read-only on every Load.
type SQLite struct {
	Path string
}

// Load reads every row in insertion order and checks it like a fixture file.
func (s *SQLite) Load(ctx context.Context) ([]event.Event, error) {
	db, err := openSQLite(ctx, s.Path, true)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	var rows []eventRow
	if err := db.SelectContext(ctx, &rows, selectEvents); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	events := make([]event.Event, len(rows))
	for i, r := range rows {
		events[i] = event.Event{
			ID:          r.ID,
			Title:       r.Title,
			Date:        r.Date,
			Status:      event.Status(r.Status),
			Description: r.Description,
		}
	}

	if err := checkRecords(events); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	if err := event.CheckUnique(events); err != nil {
		return nil, err
	}
	return events, nil
}

// WriteSQLite creates the schema at path if needed and replaces the contents
// of the events table with events.
func WriteSQLite(ctx context.Context, path string, events []event.Event) error {
	db, err := openSQLite(ctx, path, false)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM events"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear events: %w", err)
	}
	for _, e := range events {
		r := eventRow{
			ID:          e.ID,
			Title:       e.Title,
			Date:        e.Date,
			Status:      string(e.Status),
			Description: e.Description,
		}
		if _, err := tx.NamedExecContext(ctx, insertEvent, r); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func openSQLite(ctx context.Context, path string, readOnly bool) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busyTimeout)
	if readOnly {
		dsn += "&mode=ro"
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return db, nil
}
