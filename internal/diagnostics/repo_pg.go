package diagnostics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO diagnostics (id, sector, urgency, contact_email, contact_name, company_name, answers, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9)`
	args, err := insertArgs(rec)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, append(args, rec.CreatedAt)...)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	query := `SELECT ` + selectColumns + ` FROM diagnostics WHERE id = $1 LIMIT 1`
	var created sql.NullTime
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, id), &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.CreatedAt = created.Time.UTC()
	return rec, nil
}

func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	query, args := listQuery(filter, func(n int) string { return fmt.Sprintf("$%d", n) }, "ALL")
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var created sql.NullTime
		rec, err := scanRecord(rows, &created)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = created.Time.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
