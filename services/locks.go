package services

import "sync"

// userLocks hands out one mutex per user so layout mutations for the same user run one at a time.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *userLocks) get(userID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lock, exists := l.locks[userID]; exists {
		return lock
	}

	lock := &sync.Mutex{}
	l.locks[userID] = lock
	return lock
}
