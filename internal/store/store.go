package store

import (
	"sync"
	"time"

	"booklayout/internal/manuscript"
)

type entry struct {
	doc      *manuscript.Document
	storedAt time.Time
}

// Store is a thread-safe in-memory manuscript registry with TTL eviction.
// Analyzed documents live here between upload and the preview/render calls
// that consume them; nothing is persisted across restarts.
type Store struct {
	mu   sync.Mutex
	docs map[string]entry
	ttl  time.Duration
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		docs: make(map[string]entry),
		ttl:  ttl,
	}
}

func (s *Store) Put(docID string, doc *manuscript.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[docID] = entry{doc: doc, storedAt: time.Now()}
}

func (s *Store) Get(docID string) *manuscript.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.docs[docID]
	if !ok {
		return nil
	}
	return e.doc
}

func (s *Store) Delete(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[docID]
	delete(s.docs, docID)
	return ok
}

// IDs returns the stored document IDs, unordered.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	return ids
}

// Cleanup removes expired documents.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, e := range s.docs {
		if now.Sub(e.storedAt) > s.ttl {
			delete(s.docs, id)
		}
	}
}
