package journal

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRender(r RenderRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO renders
		(render_id, time, category, symbols, interval, start_date, end_date, symbols_with_data, warnings, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RenderID, r.Time, r.Category, r.Symbols, r.Interval,
		r.Start, r.End, r.SymbolsWithData, r.Warnings, r.ElapsedMS,
	)
	return err
}

// ListRenders returns the most recent render records, newest first.
func (j *SQLiteJournal) ListRenders(ctx context.Context, limit int) ([]RenderRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT render_id, time, category, symbols, interval, start_date, end_date,
		       symbols_with_data, warnings, elapsed_ms
		FROM renders ORDER BY time DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RenderRecord
	for rows.Next() {
		var r RenderRecord
		if err := rows.Scan(
			&r.RenderID, &r.Time, &r.Category, &r.Symbols, &r.Interval,
			&r.Start, &r.End, &r.SymbolsWithData, &r.Warnings, &r.ElapsedMS,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
