// Package crud implements the create/read/update/delete flow shared by every
// entity: validation before any write, not-found before field checks on update,
// a best-effort duplicate pre-check, and translation of store integrity errors
// into the same apperr kinds the pre-checks produce.
package crud

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

// Repository is the store contract every entity repository satisfies.
// Get and Update return nil, nil when the record does not exist.
type Repository[E, C, U any] interface {
	Create(ctx context.Context, req C) (*E, error)
	Get(ctx context.Context, id int64) (*E, error)
	List(ctx context.Context) ([]E, error)
	Update(ctx context.Context, id int64, req U) (*E, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Rules is the per-entity configuration of the shared flow
type Rules[E, C, U any] struct {
	// Entity is the display name used in messages, e.g. "Country"
	Entity string
	// ID extracts the identifier from a record
	ID func(e *E) int64

	// ValidateCreate normalises req in place and checks fields and references
	ValidateCreate func(ctx context.Context, req *C) error
	// ValidateUpdate checks only the supplied fields of req against the current record
	ValidateUpdate func(ctx context.Context, current *E, req *U) error

	// DuplicateOnCreate reports whether another record already holds the unique key
	DuplicateOnCreate func(ctx context.Context, req C) (bool, error)
	// DuplicateOnUpdate reports whether a different record holds the unique key being set
	DuplicateOnUpdate func(ctx context.Context, current *E, req U) (bool, error)
	// DuplicateMessage is returned for both the pre-check and the store's unique violation
	DuplicateMessage string

	// ForeignKeys maps store constraint names to request fields for clearer messages
	ForeignKeys map[string]string
}

// App runs the shared flow for one entity
type App[E, C, U any] struct {
	repo  Repository[E, C, U]
	rules Rules[E, C, U]
	feed  changefeed.Publisher
	clock clockwork.Clock
}

// New creates an App. A nil feed disables change notifications.
func New[E, C, U any](repo Repository[E, C, U], rules Rules[E, C, U], feed changefeed.Publisher, clock clockwork.Clock) *App[E, C, U] {
	if feed == nil {
		feed = changefeed.NoopPublisher{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App[E, C, U]{repo: repo, rules: rules, feed: feed, clock: clock}
}

// Entity returns the display name of the managed entity
func (a *App[E, C, U]) Entity() string {
	return a.rules.Entity
}

// Create validates req and persists a new record
func (a *App[E, C, U]) Create(ctx context.Context, req C) (*E, error) {
	if a.rules.ValidateCreate != nil {
		if err := a.rules.ValidateCreate(ctx, &req); err != nil {
			return nil, a.Fail("create", err)
		}
	}

	if a.rules.DuplicateOnCreate != nil {
		dup, err := a.rules.DuplicateOnCreate(ctx, req)
		if err != nil {
			return nil, a.Fail("create", err)
		}
		if dup {
			return nil, apperr.Duplicate(a.rules.Entity, a.rules.DuplicateMessage)
		}
	}

	created, err := a.repo.Create(ctx, req)
	if err != nil {
		return nil, a.Translate("create", 0, err)
	}

	id := a.rules.ID(created)
	log.Info().Str("entity", a.rules.Entity).Int64("id", id).Msg("created")
	a.Notify(ctx, changefeed.OpCreated, id)
	return created, nil
}

// Get returns the record or a not-found error
func (a *App[E, C, U]) Get(ctx context.Context, id int64) (*E, error) {
	if err := a.CheckID(id); err != nil {
		return nil, err
	}

	e, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, a.Fail("get", err)
	}
	if e == nil {
		return nil, apperr.NotFound(a.rules.Entity, id)
	}
	return e, nil
}

// Exists returns nil when the record exists, a not-found error when it does not
func (a *App[E, C, U]) Exists(ctx context.Context, id int64) error {
	_, err := a.Get(ctx, id)
	return err
}

// List returns every record; an empty slice when there are none
func (a *App[E, C, U]) List(ctx context.Context) ([]E, error) {
	items, err := a.repo.List(ctx)
	if err != nil {
		return nil, a.Fail("list", err)
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

// Update confirms the record exists, validates the supplied fields and applies them
func (a *App[E, C, U]) Update(ctx context.Context, id int64, req U) (*E, error) {
	current, err := a.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.rules.ValidateUpdate != nil {
		if err := a.rules.ValidateUpdate(ctx, current, &req); err != nil {
			return nil, a.Fail("update", err)
		}
	}

	if a.rules.DuplicateOnUpdate != nil {
		dup, err := a.rules.DuplicateOnUpdate(ctx, current, req)
		if err != nil {
			return nil, a.Fail("update", err)
		}
		if dup {
			return nil, apperr.Duplicate(a.rules.Entity, a.rules.DuplicateMessage)
		}
	}

	updated, err := a.repo.Update(ctx, id, req)
	if err != nil {
		return nil, a.Translate("update", id, err)
	}
	if updated == nil {
		// deleted between the existence check and the write
		return nil, apperr.NotFound(a.rules.Entity, id)
	}

	log.Info().Str("entity", a.rules.Entity).Int64("id", id).Msg("updated")
	a.Notify(ctx, changefeed.OpUpdated, id)
	return updated, nil
}

// Delete confirms the record exists and removes it
func (a *App[E, C, U]) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := a.Get(ctx, id); err != nil {
		return false, err
	}

	deleted, err := a.repo.Delete(ctx, id)
	if err != nil {
		return false, a.Translate("delete", id, err)
	}

	if deleted {
		log.Info().Str("entity", a.rules.Entity).Int64("id", id).Msg("deleted")
		a.Notify(ctx, changefeed.OpDeleted, id)
	}
	return deleted, nil
}

// CheckID rejects identifiers that can never exist
func (a *App[E, C, U]) CheckID(id int64) error {
	if id < 1 {
		return apperr.Validation(a.rules.Entity, "id", fmt.Sprintf("%s ID must be a positive integer.", a.rules.Entity))
	}
	return nil
}

// Fail passes apperr errors through and wraps anything else as a store error
func (a *App[E, C, U]) Fail(op string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Store(a.rules.Entity, op, err)
}

// Translate maps a failed write to the apperr kind a caller can act on
func (a *App[E, C, U]) Translate(op string, id int64, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}

	entity := a.rules.Entity
	v := sqlutil.Classify(err)
	switch v.Kind {
	case sqlutil.UniqueViolation:
		dup := apperr.Duplicate(entity, a.rules.DuplicateMessage)
		dup.Err = err
		return dup
	case sqlutil.ForeignKeyViolation:
		if op == "delete" {
			e := apperr.Validation(entity, "id", fmt.Sprintf("%s with ID %d is still referenced by other records.", entity, id))
			e.Err = err
			return e
		}
		field := a.rules.ForeignKeys[v.Constraint]
		msg := fmt.Sprintf("%s references a record that does not exist.", entity)
		if field != "" {
			msg = fmt.Sprintf("%s %s references a record that does not exist.", entity, field)
		}
		e := apperr.Validation(entity, field, msg)
		e.Err = err
		return e
	case sqlutil.CheckViolation, sqlutil.NotNullViolation:
		e := apperr.Validation(entity, "", fmt.Sprintf("%s data violates a store constraint.", entity))
		e.Err = err
		return e
	}

	return apperr.Store(entity, op, err)
}

// Notify publishes a change; failures are logged and otherwise ignored
func (a *App[E, C, U]) Notify(ctx context.Context, op changefeed.Op, id int64) {
	change := changefeed.Change{Entity: a.rules.Entity, Op: op, ID: id, At: a.clock.Now().UTC()}
	if err := a.feed.Publish(ctx, change); err != nil {
		log.Warn().Err(err).Str("entity", a.rules.Entity).Int64("id", id).Str("op", string(op)).Msg("change notification failed")
	}
}

// Existence is satisfied by any App; used for parent checks across entities
type Existence interface {
	Entity() string
	Exists(ctx context.Context, id int64) error
}

// Children verifies the parent exists, then runs the relationship query
func Children[T any](ctx context.Context, parent Existence, parentID int64, childEntity string, fetch func(context.Context, int64) ([]T, error)) ([]T, error) {
	if err := parent.Exists(ctx, parentID); err != nil {
		return nil, err
	}

	items, err := fetch(ctx, parentID)
	if err != nil {
		return nil, apperr.Store(childEntity, "list", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Reference checks an optional or required foreign reference proactively.
// A missing record becomes a validation error on field rather than a not-found.
func Reference(ctx context.Context, entity, field string, target Existence, id int64) error {
	err := target.Exists(ctx, id)
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) && (appErr.Kind == apperr.KindNotFound || appErr.Kind == apperr.KindValidation) {
		e := apperr.Validation(entity, field, fmt.Sprintf("%s with ID %d does not exist.", target.Entity(), id))
		e.ID = id
		return e
	}
	return err
}
