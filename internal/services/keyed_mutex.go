package services

import "sync"

// keyedMutex provides per-key mutual exclusion. The payment application
// engine locks per invoice id and per payment id so that concurrent
// read-modify-write cycles on the same document cannot lose updates.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use, and returns the
// matching unlock function. Lock entries are retained for the process
// lifetime; the key space (active invoice and payment ids) is small.
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
