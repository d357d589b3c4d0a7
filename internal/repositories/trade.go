package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

const tradeColumns = `trade_id, asker_id, book_id, owner_id, status, created_at, updated_at`

// TradeReadRepository handles trade read operations
type TradeReadRepository struct {
	db *sqlx.DB
}

func NewTradeReadRepository(db *sqlx.DB) *TradeReadRepository {
	return &TradeReadRepository{db: db}
}

// GetByID returns the trade with the given id, or nil if there is none.
func (r *TradeReadRepository) GetByID(ctx context.Context, tradeID uuid.UUID) (*models.TradeDB, error) {
	const query = `
		SELECT ` + tradeColumns + `
		FROM trades
		WHERE trade_id = $1
	`

	var trade models.TradeDB
	err := r.db.GetContext(ctx, &trade, query, tradeID)
	logQuery(query, []any{tradeID}, trade, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// ListByOwnerID returns the trades addressed to ownerID
func (r *TradeReadRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]models.TradeDB, error) {
	const query = `
		SELECT ` + tradeColumns + `
		FROM trades
		WHERE owner_id = $1
		ORDER BY created_at, trade_id
	`

	var trades []models.TradeDB
	err := r.db.SelectContext(ctx, &trades, query, ownerID)
	logQuery(query, []any{ownerID}, len(trades), err)

	return trades, err
}

// ListByAskerID returns the trades requested by askerID
func (r *TradeReadRepository) ListByAskerID(ctx context.Context, askerID string) ([]models.TradeDB, error) {
	const query = `
		SELECT ` + tradeColumns + `
		FROM trades
		WHERE asker_id = $1
		ORDER BY created_at, trade_id
	`

	var trades []models.TradeDB
	err := r.db.SelectContext(ctx, &trades, query, askerID)
	logQuery(query, []any{askerID}, len(trades), err)

	return trades, err
}

// TradeWriteRepository handles trade write operations
type TradeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTradeWriteRepository(db *sqlx.DB, txGetter TxGetter) *TradeWriteRepository {
	return &TradeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new trade and returns the stored row.
func (r *TradeWriteRepository) Save(ctx context.Context, askerID string, bookID uuid.UUID, ownerID string, status models.TradeStatus) (*models.TradeDB, error) {
	const query = `
		INSERT INTO trades (trade_id, asker_id, book_id, owner_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + tradeColumns
	args := []any{uuid.New(), askerID, bookID, ownerID, status}

	var trade models.TradeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &trade, query, args...)
	logQuery(query, args, trade, err)

	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// UpdateStatus sets the status of a trade. Last write wins.
func (r *TradeWriteRepository) UpdateStatus(ctx context.Context, tradeID uuid.UUID, status models.TradeStatus) error {
	const query = `
		UPDATE trades
		SET status = $2, updated_at = NOW()
		WHERE trade_id = $1
	`
	args := []any{tradeID, status}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// DeleteByIDAndAskerID deletes the trade only when askerID requested it and
// returns the removed row, or nil if nothing matched.
func (r *TradeWriteRepository) DeleteByIDAndAskerID(ctx context.Context, tradeID uuid.UUID, askerID string) (*models.TradeDB, error) {
	const query = `
		DELETE FROM trades
		WHERE trade_id = $1 AND asker_id = $2
		RETURNING ` + tradeColumns
	args := []any{tradeID, askerID}

	var trade models.TradeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &trade, query, args...)
	logQuery(query, args, trade, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// DeleteByBookID removes every trade referencing bookID, whatever its status.
func (r *TradeWriteRepository) DeleteByBookID(ctx context.Context, bookID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM trades
		WHERE book_id = $1
	`
	args := []any{bookID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}
