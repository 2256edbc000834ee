package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// JSON and timestamp column helpers. Timestamps are stored as RFC 3339
// TEXT in UTC so lexicographic ORDER BY matches chronological order.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// encodeStrings marshals a string slice for a JSON list column. A nil
// slice is stored as an empty list.
func encodeStrings(ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	raw, err := json.Marshal(ss)
	if err != nil {
		return "", fmt.Errorf("marshaling string list: %w", err)
	}
	return string(raw), nil
}

func decodeStrings(raw string) ([]string, error) {
	var ss []string
	if err := json.Unmarshal([]byte(raw), &ss); err != nil {
		return nil, fmt.Errorf("parsing string list: %w", err)
	}
	if ss == nil {
		ss = []string{}
	}
	return ss, nil
}

// encodeNullable marshals an optional struct for a nullable JSON
// column. Nil maps to SQL NULL.
func encodeNullable[T any](v *T) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshaling value: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func decodeNullable[T any](ns sql.NullString) (*T, error) {
	if !ns.Valid {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal([]byte(ns.String), &v); err != nil {
		return nil, fmt.Errorf("parsing value: %w", err)
	}
	return &v, nil
}
