package store

import (
	"container/list"
	"sync"

	"dining-companion/internal/model"

	"github.com/rs/zerolog"
)

// Registry owns one Store per user, created on first use from a shared
// catalogue snapshot. When more than capacity stores exist the least
// recently used one is dropped along with its favourites.
type Registry struct {
	locations []model.DiningLocation
	capacity  int
	logger    zerolog.Logger

	mu     sync.Mutex
	stores map[string]*list.Element
	recent *list.List // of *Store, most recently used first
}

// NewRegistry creates an empty registry over locations holding at most
// capacity stores. A capacity of zero or less means unbounded.
func NewRegistry(locations []model.DiningLocation, capacity int, logger zerolog.Logger) *Registry {
	return &Registry{
		locations: locations,
		capacity:  capacity,
		logger:    logger.With().Str("component", "store-registry").Logger(),
		stores:    make(map[string]*list.Element),
		recent:    list.New(),
	}
}

// Get returns the store for userID, creating it when needed.
func (r *Registry) Get(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.stores[userID]; ok {
		r.recent.MoveToFront(el)
		return el.Value.(*Store)
	}

	s := New(userID, r.locations)
	s.Subscribe(func(c Change) {
		r.logger.Debug().
			Str("user_id", c.UserID).
			Str("item_id", c.ItemID).
			Bool("favorite", c.Favorite).
			Msg("favourite toggled")
	})
	r.stores[userID] = r.recent.PushFront(s)

	r.logger.Debug().Str("user_id", userID).Msg("session store created")

	if r.capacity > 0 && r.recent.Len() > r.capacity {
		oldest := r.recent.Remove(r.recent.Back()).(*Store)
		delete(r.stores, oldest.UserID())

		r.logger.Debug().Str("user_id", oldest.UserID()).Msg("session store evicted")
	}

	return s
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
