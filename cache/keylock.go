package cache

import "sync"

// keyLocks provides a mutex per cache key so that concurrent misses on the
// same key serialize through a single loader. Entries are reference-counted
// and removed as soon as the last holder releases, so the map does not grow
// with the key space.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

// acquire locks the mutex for key, creating it if needed
func (kl *keyLocks) acquire(key string) *keyLock {
	kl.mu.Lock()
	lock, ok := kl.locks[key]
	if !ok {
		lock = &keyLock{}
		kl.locks[key] = lock
	}
	lock.refs++
	kl.mu.Unlock()

	lock.Lock()
	return lock
}

// release unlocks the mutex for key and drops it once unreferenced
func (kl *keyLocks) release(key string, lock *keyLock) {
	lock.Unlock()

	kl.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(kl.locks, key)
	}
	kl.mu.Unlock()
}
