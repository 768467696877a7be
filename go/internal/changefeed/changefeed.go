// Package changefeed announces successful writes so other systems can refresh
// their copies of the reference data. Notifications are best effort: the
// database stays the source of truth and a failed publish never fails a write.
package changefeed

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Op is the kind of write that happened
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Change describes one committed write
type Change struct {
	Entity string    `json:"entity"`
	Op     Op        `json:"op"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

// Subject returns the NATS subject for the change, e.g. "football.championship_participation.created"
func (c Change) Subject(prefix string) string {
	return prefix + "." + snake(c.Entity) + "." + string(c.Op)
}

// Publisher sends change notifications
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// NoopPublisher drops every change; used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Change) error { return nil }

// Recorder keeps published changes in memory
type Recorder struct {
	mu      sync.Mutex
	changes []Change
}

func (r *Recorder) Publish(_ context.Context, change Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
	return nil
}

// Changes returns a copy of everything recorded so far
func (r *Recorder) Changes() []Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Change, len(r.changes))
	copy(out, r.changes)
	return out
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fanout publishes every change to each publisher in turn and joins their errors
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, change Change) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, change); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
