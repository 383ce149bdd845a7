package storage

import (
	"sync"

	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
)

// SelectionStore keeps one filter selection per browser session in memory.
// Nothing is persisted; selections live as long as the process.
type SelectionStore struct {
	selections map[string]browser.Selection
	mu         sync.RWMutex
}

func New() *SelectionStore {
	return &SelectionStore{
		selections: make(map[string]browser.Selection),
	}
}

func (s *SelectionStore) Get(sessionID string) (browser.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	selection, exists := s.selections[sessionID]
	return selection, exists
}

// Update applies fn to the session's selection under the store lock and
// saves the result. A session without a selection starts from initial.
func (s *SelectionStore) Update(sessionID string, initial browser.Selection, fn func(*browser.Selection)) browser.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	selection, exists := s.selections[sessionID]
	if !exists {
		selection = initial
	}
	fn(&selection)
	s.selections[sessionID] = selection
	return selection
}

func (s *SelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selections)
}

// Delete forgets the session's selection so its next request starts from
// the defaults.
func (s *SelectionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, sessionID)
}
