package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Clock is the store's source of the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// IDGenerator produces fresh entity IDs. kind is the collection prefix
// ("todo", "expense", ...); IDs must be unique within a collection.
type IDGenerator interface {
	NewID(kind string) string
}

// UUIDGenerator builds IDs of the form "<kind>-<uuid>".
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(kind string) string {
	return kind + "-" + uuid.New().String()
}

// Observer is told about every mutation call once the store lock is released.
type Observer interface {
	Mutated(ctx context.Context, ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev Event)

func (f ObserverFunc) Mutated(ctx context.Context, ev Event) { f(ctx, ev) }

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for every timestamp the store writes.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator overrides how entity IDs are generated.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithObserver registers an observer. May be given more than once.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, o) }
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}
