package catalog

import (
	"bookexplorer/internal/book"
)

// Store holds the client-visible ordered book list for one session.
// It performs no I/O; loading and creation go through book.Repository
// and the result is pushed in here.
type Store struct {
	books []book.Book
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll discards the current contents and stores the new sequence
// verbatim, preserving input order.
func (s *Store) ReplaceAll(books []book.Book) {
	s.books = books
}

// Append adds one book to the end. No deduplication.
func (s *Store) Append(b book.Book) {
	s.books = append(s.books, b)
}

// Books returns the current sequence. Callers must not mutate it.
func (s *Store) Books() []book.Book {
	return s.books
}

// Len returns the number of books currently held.
func (s *Store) Len() int {
	return len(s.books)
}
