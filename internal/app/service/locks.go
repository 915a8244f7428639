package service

import "sync"

// BusinessLocks hands out one mutex per business ID. Holding the mutex
// serializes writes to that business's derived columns (average_rating,
// review_count, has_deals) so concurrent submissions cannot lose updates.
// Reads never take these locks.
type BusinessLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewBusinessLocks() *BusinessLocks {
	return &BusinessLocks{locks: make(map[string]*sync.Mutex)}
}

// Get returns the mutex for the given business, creating it on first use.
func (l *BusinessLocks) Get(businessID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[businessID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[businessID] = lock
	}
	return lock
}
