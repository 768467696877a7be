package sqlutil

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ViolationKind is the integrity constraint a statement tripped over
type ViolationKind int

const (
	NoViolation ViolationKind = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

// Violation describes an integrity failure independent of the driver.
// Constraint is the constraint name on Postgres and "table.column" on SQLite (empty for foreign keys).
type Violation struct {
	Kind       ViolationKind
	Constraint string
}

// Postgres SQLSTATE codes, class 23
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// Classify inspects err for a lib/pq, pgx or SQLite integrity error
func Classify(err error) Violation {
	if err == nil {
		return Violation{}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return Violation{Kind: fromSQLState(string(pqErr.Code)), Constraint: pqErr.Constraint}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return Violation{Kind: fromSQLState(pgErr.Code), Constraint: pgErr.ConstraintName}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		v := Violation{}
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			v.Kind = UniqueViolation
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			v.Kind = ForeignKeyViolation
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			v.Kind = CheckViolation
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			v.Kind = NotNullViolation
		default:
			return Violation{}
		}
		// "constraint failed: UNIQUE constraint failed: teams.name (2067)"
		msg := liteErr.Error()
		const marker = " constraint failed: "
		if i := strings.LastIndex(msg, marker); i >= 0 {
			v.Constraint = strings.TrimSpace(strings.SplitN(msg[i+len(marker):], " (", 2)[0])
		}
		return v
	}

	return Violation{}
}

// IsUniqueViolation reports whether err is a unique or primary key violation
func IsUniqueViolation(err error) bool {
	return Classify(err).Kind == UniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation
func IsForeignKeyViolation(err error) bool {
	return Classify(err).Kind == ForeignKeyViolation
}

func fromSQLState(code string) ViolationKind {
	switch code {
	case pgUniqueViolation:
		return UniqueViolation
	case pgForeignKeyViolation:
		return ForeignKeyViolation
	case pgCheckViolation:
		return CheckViolation
	case pgNotNullViolation:
		return NotNullViolation
	default:
		return NoViolation
	}
}
