package books

import (
	"context"
	"sync"
	"time"
)

// MemoryStore provides an in-memory implementation of Store backed by an
// ordered slice. All access goes through the mutex; id assignment and the
// append happen in the same critical section.
type MemoryStore struct {
	mu    sync.RWMutex
	books []Book
	now   func() time.Time
}

// NewMemoryStore constructs a MemoryStore seeded with the provided books.
func NewMemoryStore(seed []Book) *MemoryStore {
	store := &MemoryStore{
		books: make([]Book, len(seed)),
		now:   time.Now,
	}
	copy(store.books, seed)
	return store
}

// List returns a copy of the full collection in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Book, len(s.books))
	copy(result, s.books)
	return result, nil
}

// FindByID retrieves the first book whose ID matches.
func (s *MemoryStore) FindByID(_ context.Context, id int) (Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, _, ok := s.find(id)
	return book, ok, nil
}

// Insert appends a book, assigning its ID as the current collection
// length plus one and stamping CreatedAt. Because the id derives from the
// length, a book inserted after a deletion can reuse a previously issued
// id; this matches the service's documented behaviour.
func (s *MemoryStore) Insert(_ context.Context, book Book) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = len(s.books) + 1
	book.CreatedAt = s.now()

	s.books = append(s.books, book)
	return book, nil
}

// Replace merges the non-nil fields of update over the book with the
// given ID, keeping its position and CreatedAt.
func (s *MemoryStore) Replace(_ context.Context, id int, update BookUpdate) (Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, i, ok := s.find(id)
	if !ok {
		return Book{}, false, nil
	}

	if update.Title != nil {
		book.Title = *update.Title
	}
	if update.Author != nil {
		book.Author = *update.Author
	}
	if update.Finished != nil {
		book.Finished = *update.Finished
	}

	s.books[i] = book
	return book, true, nil
}

// Remove deletes the book with the given ID if it exists.
func (s *MemoryStore) Remove(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := s.find(id)
	if !ok {
		return false, nil
	}

	s.books = append(s.books[:i], s.books[i+1:]...)
	return true, nil
}

// find returns the book and index for an id. Callers must hold the lock.
func (s *MemoryStore) find(id int) (Book, int, bool) {
	for i, book := range s.books {
		if book.ID == id {
			return book, i, true
		}
	}
	return Book{}, -1, false
}
