package diagnostics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sqliteTimeLayout is fixed width so created_at sorts lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepo implements Repo on a single-file SQLite database.
type SQLiteRepo struct {
	DB *sql.DB
}

func (r *SQLiteRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO diagnostics (id, sector, urgency, contact_email, contact_name, company_name, answers, result, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args, err := insertArgs(rec)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, append(args, rec.CreatedAt.UTC().Format(sqliteTimeLayout))...)
	return err
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id string) (Record, error) {
	query := `SELECT ` + selectColumns + ` FROM diagnostics WHERE id = ? LIMIT 1`
	var created string
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, id), &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if rec.CreatedAt, err = parseSQLiteTime(created); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *SQLiteRepo) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	query, args := listQuery(filter, func(int) string { return "?" }, "-1")
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var created string
		rec, err := scanRecord(rows, &created)
		if err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = parseSQLiteTime(created); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func parseSQLiteTime(raw string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, raw)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", raw, err)
	}
	return t.UTC(), nil
}
