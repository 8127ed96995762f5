package services

import "sync"

// keyedMutex linearizes mutations per tracking ID: no two concurrent
// mutations on the same key may interleave, while mutations on different keys
// proceed in parallel. Entries are kept for the process lifetime; the key
// space is bounded by the number of shipments this instance has mutated.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
