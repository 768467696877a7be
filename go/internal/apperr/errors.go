// Package apperr defines the error kinds the application layer reports.
// Repositories return raw wrapped errors; Apps translate them into *Error.
package apperr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind classifies an application error
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Apps
type Error struct {
	Kind    Kind
	Entity  string // "Country", "Team", ...
	Field   string // JSON field name, validation errors only
	ID      int64  // offending or colliding identifier when known
	Op      string // operation for store errors, e.g. "create"
	Message string
	Err     error // underlying cause, never shown to callers
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, &Error{Kind: KindNotFound}) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Entity == "" && t.Message == ""
}

// Validation reports a field or business-rule failure
func Validation(entity, field, message string) *Error {
	return &Error{Kind: KindValidation, Entity: entity, Field: field, Message: message}
}

// Validationf is Validation with a formatted message
func Validationf(entity, field, format string, args ...any) *Error {
	return Validation(entity, field, fmt.Sprintf(format, args...))
}

// NotFound reports a missing record
func NotFound(entity string, id int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s with ID %d not found.", entity, id),
	}
}

// NotFoundByName reports a missing record looked up by its unique name
func NotFoundByName(entity, name string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s with name '%s' not found.", entity, name),
	}
}

// Duplicate reports a uniqueness violation
func Duplicate(entity, message string) *Error {
	return &Error{Kind: KindDuplicate, Entity: entity, Message: message}
}

// Conflict reports a scheduling overlap with the record identified by id
func Conflict(entity string, id int64, message string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id, Message: message}
}

// Store wraps an unexpected persistence failure. The message names the entity
// and operation only; err stays reachable through Unwrap for logging.
func Store(entity, op string, err error) *Error {
	return &Error{
		Kind:    KindStore,
		Entity:  entity,
		Op:      op,
		Message: fmt.Sprintf("failed to %s %s", op, words(entity)),
		Err:     err,
	}
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given Kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// WithIndex prefixes a validation message with a batch position, keeping the kind and field
func WithIndex(err error, index int) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	cp := *e
	cp.Message = fmt.Sprintf("item %d: %s", index, e.Message)
	return &cp
}

// words turns "ChampionshipParticipation" into "championship participation"
func words(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
