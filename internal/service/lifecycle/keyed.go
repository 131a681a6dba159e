package lifecycle

import "sync"

// keyedMutex serializes work per schedule id.
type keyedMutex struct {
	// mu protects locks.
	mu sync.Mutex
	// locks holds the lock of every id with at least one holder or waiter.
	locks map[int64]*keyedLock
}

// keyedLock is the lock of one id together with its reference count.
type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until id is free and returns the matching unlock function.
func (k *keyedMutex) lock(id int64) func() {
	k.mu.Lock()

	if k.locks == nil {
		k.locks = make(map[int64]*keyedLock)
	}

	entry, ok := k.locks[id]
	if !ok {
		entry = new(keyedLock)
		k.locks[id] = entry
	}

	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		defer k.mu.Unlock()

		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, id)
		}
	}
}

// size returns the number of ids currently tracked.
func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.locks)
}
