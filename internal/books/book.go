package books

import (
	"context"
	"time"
)

// Book represents a single book in the collection.
type Book struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Finished  bool      `json:"finished"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookUpdate carries the fields of a partial update. A nil field keeps
// the existing value; ID and CreatedAt are never updatable.
type BookUpdate struct {
	Title    *string
	Author   *string
	Finished *bool
}

// Store describes the behaviour required for holding books.
type Store interface {
	List(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int) (Book, bool, error)
	Insert(ctx context.Context, book Book) (Book, error)
	Replace(ctx context.Context, id int, update BookUpdate) (Book, bool, error)
	Remove(ctx context.Context, id int) (bool, error)
}
