package store

import (
	"context"
	"errors"
)

// ErrNotInitialized is returned when a store is requested from a context
// that was never given one.
var ErrNotInitialized = errors.New("store: accessed outside of an initialised session")

type contextKey struct{}

// WithStore returns a copy of ctx carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store carried by ctx.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNotInitialized
	}
	return s, nil
}

// MustFromContext is like FromContext but panics with ErrNotInitialized.
func MustFromContext(ctx context.Context) *Store {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
