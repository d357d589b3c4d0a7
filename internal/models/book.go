package models

import (
	"time"

	"github.com/google/uuid"
)

// BookDB represents a book row in the database
type BookDB struct {
	BookID    uuid.UUID `json:"book_id" db:"book_id"`       // Unique book identifier
	Name      string    `json:"name" db:"name"`             // Book title
	UserID    string    `json:"user_id" db:"user_id"`       // Owner of the book
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the book was added
}

// BookListing is a book as shown in the public catalog.
// Disabled is set when the viewer owns the book and therefore cannot ask for it.
type BookListing struct {
	BookDB
	Disabled bool `json:"disabled"`
}
