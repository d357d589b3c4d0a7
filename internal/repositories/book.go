package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

// BookReadRepository handles book read operations
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// GetByID returns the book with the given id, or nil if there is none.
func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT book_id, name, user_id, created_at
		FROM books
		WHERE book_id = $1
	`

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, bookID)
	logQuery(query, []any{bookID}, book, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns every book in the catalog
func (r *BookReadRepository) List(ctx context.Context) ([]models.BookDB, error) {
	const query = `
		SELECT book_id, name, user_id, created_at
		FROM books
		ORDER BY created_at, book_id
	`

	var books []models.BookDB
	err := r.db.SelectContext(ctx, &books, query)
	logQuery(query, nil, len(books), err)

	return books, err
}

// ListByUserID returns the books owned by userID
func (r *BookReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.BookDB, error) {
	const query = `
		SELECT book_id, name, user_id, created_at
		FROM books
		WHERE user_id = $1
		ORDER BY created_at, book_id
	`

	var books []models.BookDB
	err := r.db.SelectContext(ctx, &books, query, userID)
	logQuery(query, []any{userID}, len(books), err)

	return books, err
}

// BookWriteRepository handles book write operations
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new book owned by userID and returns the stored row.
func (r *BookWriteRepository) Save(ctx context.Context, name, userID string) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (book_id, name, user_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING book_id, name, user_id, created_at
	`
	args := []any{uuid.New(), name, userID}

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, args...)
	logQuery(query, args, book, err)

	if err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteByIDAndUserID deletes the book only when userID owns it and reports
// how many rows were removed.
func (r *BookWriteRepository) DeleteByIDAndUserID(ctx context.Context, bookID uuid.UUID, userID string) (int64, error) {
	const query = `
		DELETE FROM books
		WHERE book_id = $1 AND user_id = $2
	`
	args := []any{bookID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
