package store

import (
	"sync"

	"dining-companion/internal/model"
)

// Change describes a single favourite toggle.
type Change struct {
	UserID   string
	ItemID   string
	Favorite bool
}

// Store holds one user's session state: the catalogue snapshot the session
// started with and the set of favourite menu item IDs.
// A Store is safe for concurrent use.
type Store struct {
	userID    string
	locations []model.DiningLocation

	mu          sync.RWMutex
	favorites   map[string]struct{}
	order       []string
	subscribers map[int]func(Change)
	nextSubID   int
}

// New creates an initialised store for userID with an empty favourites set.
func New(userID string, locations []model.DiningLocation) *Store {
	return &Store{
		userID:      userID,
		locations:   locations,
		favorites:   make(map[string]struct{}),
		subscribers: make(map[int]func(Change)),
	}
}

// UserID returns the user the store belongs to.
func (s *Store) UserID() string {
	return s.userID
}

// Locations returns the catalogue snapshot. Callers must not modify it.
func (s *Store) Locations() []model.DiningLocation {
	return s.locations
}

// ToggleFavorite removes itemID from the favourites when present and adds it
// otherwise, returning the new membership. Any string is accepted.
func (s *Store) ToggleFavorite(itemID string) bool {
	s.mu.Lock()

	_, present := s.favorites[itemID]
	if present {
		delete(s.favorites, itemID)
		for i, id := range s.order {
			if id == itemID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.favorites[itemID] = struct{}{}
		s.order = append(s.order, itemID)
	}

	subs := make([]func(Change), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	change := Change{UserID: s.userID, ItemID: itemID, Favorite: !present}
	for _, fn := range subs {
		fn(change)
	}

	return !present
}

// IsFavorite reports whether itemID is a favourite.
func (s *Store) IsFavorite(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.favorites[itemID]
	return ok
}

// Favorites returns the favourite item IDs in the order they were added.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Subscribe registers fn to be called synchronously after every toggle.
// Subscribers run outside the store lock and may read the store.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}
