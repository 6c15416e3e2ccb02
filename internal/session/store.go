package session

import "sync"

// Store is the registry of live sessions. Update serializes all mutation of
// one session; Snapshot is the read-only view used by the debug endpoint.
type Store interface {
	// Update runs fn with exclusive access to the session for id, creating
	// an ACTIVE empty session on first reference. Updates for different ids
	// do not contend with each other.
	Update(id string, fn func(*Session))
	// Snapshot returns a copy of the session state, or ok=false when the
	// id has never been seen.
	Snapshot(id string) (Snapshot, bool)
	// Len reports how many sessions the store currently holds.
	Len() int
}

// MemoryStore keeps sessions in process memory. State is lost on restart;
// that is an accepted property of this deployment, and the Store interface
// is the seam for a durable replacement.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*storeEntry
}

type storeEntry struct {
	mu      sync.Mutex
	session *Session
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*storeEntry)}
}

func (st *MemoryStore) entry(id string) *storeEntry {
	st.mu.RLock()
	e, ok := st.entries[id]
	st.mu.RUnlock()
	if ok {
		return e
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok = st.entries[id]; ok {
		return e
	}
	e = &storeEntry{session: newSession(id)}
	st.entries[id] = e
	return e
}

// Update implements Store. The store-level lock is held only long enough to
// find or create the entry; fn runs under the entry's own mutex.
func (st *MemoryStore) Update(id string, fn func(*Session)) {
	e := st.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Snapshot implements Store.
func (st *MemoryStore) Snapshot(id string) (Snapshot, bool) {
	st.mu.RLock()
	e, ok := st.entries[id]
	st.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Snapshot(), true
}

// Len implements Store.
func (st *MemoryStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}
