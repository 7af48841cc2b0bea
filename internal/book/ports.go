package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	// ListAll returns every book in insertion order.
	ListAll(ctx context.Context) ([]Book, error)
	// Create stores a new book and fills its ID and timestamps.
	Create(ctx context.Context, b *Book) error
}
