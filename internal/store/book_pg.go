package store

// Repository implementation (Postgres)

import (
	"context"

	"bookexplorer/internal/book"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

// ListAll returns every book in insertion order.
func (r *BookPG) ListAll(ctx context.Context) ([]book.Book, error) {
	query := `
	SELECT id, title, author, genre, year, price, rating, review_count, created_at, updated_at
	FROM books
	ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Year, &b.Price, &b.Rating, &b.ReviewCount, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// Create inserts a book; the database assigns id and timestamps.
func (r *BookPG) Create(ctx context.Context, b *book.Book) error {
	query := `
	INSERT INTO books (id, title, author, genre, year, price, rating, review_count, created_at, updated_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Genre, b.Year, b.Price, b.Rating, b.ReviewCount,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}
