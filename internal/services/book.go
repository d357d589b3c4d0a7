package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Error variables
var (
	ErrBookNotFound  = errors.New("book not found")
	ErrEmptyBookName = errors.New("book name is required")
)

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	List(ctx context.Context) ([]models.BookDB, error)
	ListByUserID(ctx context.Context, userID string) ([]models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, name, userID string) (*models.BookDB, error)
	DeleteByIDAndUserID(ctx context.Context, bookID uuid.UUID, userID string) (int64, error)
}

// TradeWriter defines write operations for trades.
type TradeWriter interface {
	Save(ctx context.Context, askerID string, bookID uuid.UUID, ownerID string, status models.TradeStatus) (*models.TradeDB, error)
	UpdateStatus(ctx context.Context, tradeID uuid.UUID, status models.TradeStatus) error
	DeleteByIDAndAskerID(ctx context.Context, tradeID uuid.UUID, askerID string) (*models.TradeDB, error)
	DeleteByBookID(ctx context.Context, bookID uuid.UUID) (int64, error)
}

// BookService manages the book catalog.
type BookService struct {
	reader BookReader
	writer BookWriter
	trades TradeWriter
}

// NewBookService creates a new BookService instance.
func NewBookService(reader BookReader, writer BookWriter, trades TradeWriter) *BookService {
	return &BookService{
		reader: reader,
		writer: writer,
		trades: trades,
	}
}

// ListAll returns every book in the catalog.
func (svc *BookService) ListAll(ctx context.Context) ([]models.BookDB, error) {
	books, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, err
	}
	return books, nil
}

// ListForViewer returns every book, marking the ones viewerID owns as disabled.
func (svc *BookService) ListForViewer(ctx context.Context, viewerID string) ([]models.BookListing, error) {
	books, err := svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]models.BookListing, 0, len(books))
	for _, book := range books {
		listings = append(listings, models.BookListing{
			BookDB:   book,
			Disabled: book.UserID == viewerID,
		})
	}
	return listings, nil
}

// ListOwnedBy returns the books owned by userID.
func (svc *BookService) ListOwnedBy(ctx context.Context, userID string) ([]models.BookDB, error) {
	books, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list owned books", "userID", userID, "err", err)
		return nil, err
	}
	return books, nil
}

// Create adds a book owned by userID. Blank names are rejected without touching the store.
func (svc *BookService) Create(ctx context.Context, userID, name string) (*models.BookDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyBookName
	}

	book, err := svc.writer.Save(ctx, name, userID)
	if err != nil {
		logger.Log.Errorw("failed to save book", "userID", userID, "name", name, "err", err)
		return nil, err
	}

	logger.Log.Infow("book created", "bookID", book.BookID, "userID", userID)
	return book, nil
}

// DeleteOwned deletes the book if userID owns it, then removes every trade
// referencing it regardless of status. A book that is missing or owned by
// someone else yields ErrBookNotFound and nothing is deleted.
func (svc *BookService) DeleteOwned(ctx context.Context, userID string, bookID uuid.UUID) error {
	deleted, err := svc.writer.DeleteByIDAndUserID(ctx, bookID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "userID", userID, "bookID", bookID, "err", err)
		return err
	}
	if deleted == 0 {
		logger.Log.Warnw("book not owned by caller", "userID", userID, "bookID", bookID)
		return ErrBookNotFound
	}

	trades, err := svc.trades.DeleteByBookID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to cascade trades", "bookID", bookID, "err", err)
		return err
	}

	logger.Log.Infow("book deleted", "bookID", bookID, "userID", userID, "tradesDeleted", trades)
	return nil
}
