package diagnostics

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/diagnostics/urgency"
)

const selectColumns = `id, sector, urgency, contact_email, contact_name, company_name, answers, result, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads selectColumns; created receives the dialect's created_at value.
func scanRecord(row rowScanner, created any) (Record, error) {
	var (
		rec            Record
		sector, level  string
		email, name    sql.NullString
		company        sql.NullString
		answersPayload sql.NullString
		resultPayload  sql.NullString
	)
	if err := row.Scan(&rec.ID, &sector, &level, &email, &name, &company, &answersPayload, &resultPayload, created); err != nil {
		return Record{}, err
	}
	rec.Sector = knowledge.Sector(sector)
	rec.Urgency = urgency.Level(level)
	rec.ContactEmail = email.String
	rec.ContactName = name.String
	rec.CompanyName = company.String

	rec.Answers = map[string]any{}
	if answersPayload.Valid && answersPayload.String != "" {
		if err := json.Unmarshal([]byte(answersPayload.String), &rec.Answers); err != nil {
			return Record{}, fmt.Errorf("decode answers for %s: %w", rec.ID, err)
		}
		if rec.Answers == nil {
			rec.Answers = map[string]any{}
		}
	}
	if resultPayload.Valid && resultPayload.String != "" {
		if err := json.Unmarshal([]byte(resultPayload.String), &rec.Result); err != nil {
			return Record{}, fmt.Errorf("decode result for %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

// insertArgs returns the values for the insert statement, created_at excluded.
func insertArgs(rec Record) ([]any, error) {
	answersPayload, err := marshalJSON(rec.Answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	resultPayload, err := marshalJSON(rec.Result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return []any{
		rec.ID,
		string(rec.Sector),
		string(rec.Urgency),
		nullString(rec.ContactEmail),
		nullString(rec.ContactName),
		nullString(rec.CompanyName),
		answersPayload,
		resultPayload,
	}, nil
}

// listQuery builds the filtered listing; ph renders the nth placeholder and
// unlimited is the dialect's spelling of "no limit".
func listQuery(filter ListFilter, ph func(int) string, unlimited string) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("SELECT " + selectColumns + " FROM diagnostics")
	if filter.Urgency != "" {
		args = append(args, string(filter.Urgency))
		b.WriteString(" WHERE urgency = " + ph(len(args)))
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		b.WriteString(" LIMIT " + ph(len(args)))
	} else {
		b.WriteString(" LIMIT " + unlimited)
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		b.WriteString(" OFFSET " + ph(len(args)))
	}
	return b.String(), args
}

func marshalJSON(value any) (string, error) {
	if value == nil {
		return "{}", nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

