package sqlutil

import (
	"database/sql"
	"time"
)

// Helper functions for converting between Go types and sql.Null* types.
// Times are normalised to UTC on the way in and out so every driver stores the same instant.

// ToSqlString converts a Go string pointer to sql.NullString
func ToSqlString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *val, Valid: true}
}

// FromSqlStringPtr converts sql.NullString to Go string pointer
func FromSqlStringPtr(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	s := val.String
	return &s
}

// ToSqlInt64 converts a Go int64 pointer to sql.NullInt64
func ToSqlInt64(val *int64) sql.NullInt64 {
	if val == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *val, Valid: true}
}

// FromSqlInt64 converts sql.NullInt64 to Go int64 pointer
func FromSqlInt64(val sql.NullInt64) *int64 {
	if !val.Valid {
		return nil
	}
	i := val.Int64
	return &i
}

// ToSqlInt32 converts a Go int32 pointer to sql.NullInt32
func ToSqlInt32(val *int32) sql.NullInt32 {
	if val == nil {
		return sql.NullInt32{Valid: false}
	}
	return sql.NullInt32{Int32: *val, Valid: true}
}

// FromSqlInt32 converts sql.NullInt32 to Go int32 pointer
func FromSqlInt32(val sql.NullInt32) *int32 {
	if !val.Valid {
		return nil
	}
	i := val.Int32
	return &i
}

// ToSqlTime converts a Go time pointer to sql.NullTime
func ToSqlTime(val *time.Time) sql.NullTime {
	if val == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: val.UTC(), Valid: true}
}

// FromSqlTime converts sql.NullTime to Go time pointer
func FromSqlTime(val sql.NullTime) *time.Time {
	if !val.Valid {
		return nil
	}
	t := val.Time.UTC()
	return &t
}

// UTC normalises a stored timestamp; second precision keeps text-encoded drivers ordering correctly
func UTC(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Date keeps only the calendar day of t, at midnight UTC, matching what a DATE column returns
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatePtr applies Date to an optional value
func DatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Date(*t)
	return &d
}
