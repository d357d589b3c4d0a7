package models

import (
	"time"

	"github.com/google/uuid"
)

// TradeStatus is the lifecycle state of a trade request.
type TradeStatus int16

// Trade statuses as persisted in the trades.status column.
const (
	TradePending  TradeStatus = 0
	TradeAccepted TradeStatus = 1
	TradeDenied   TradeStatus = 2
)

// String returns the label shown to users.
func (s TradeStatus) String() string {
	switch s {
	case TradePending:
		return "PENDING"
	case TradeAccepted:
		return "ACCEPTED"
	case TradeDenied:
		return "DENIED"
	default:
		return "UNKNOWN"
	}
}

// TradeDB represents a trade row in the database.
// OwnerID is copied from the book when the trade is created and is not kept in sync afterwards.
type TradeDB struct {
	TradeID   uuid.UUID   `json:"trade_id" db:"trade_id"`     // Unique trade identifier
	AskerID   string      `json:"asker_id" db:"asker_id"`     // User asking for the book
	BookID    uuid.UUID   `json:"book_id" db:"book_id"`       // Requested book
	OwnerID   string      `json:"owner_id" db:"owner_id"`     // Book owner at creation time
	Status    TradeStatus `json:"status" db:"status"`         // Current status
	CreatedAt time.Time   `json:"created_at" db:"created_at"` // Timestamp when the trade was requested
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"` // Timestamp of the last status change
}

// TradeView is a trade joined with the name of its book.
type TradeView struct {
	TradeDB
	BookName   string `json:"book_name"`
	StatusText string `json:"status_text"`
}

// OwnerTrades holds the trades addressed to a book owner, bucketed by status.
type OwnerTrades struct {
	Pending  []TradeView `json:"pending"`
	Accepted []TradeView `json:"accepted"`
	Denied   []TradeView `json:"denied"`
}

// Trade operations reported in events and metrics.
const (
	TradeOperationRequest  = "request"
	TradeOperationAccept   = "accept"
	TradeOperationDeny     = "deny"
	TradeOperationWithdraw = "withdraw"
)

// TradeEvent is published to Kafka after every successful trade mutation.
type TradeEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	TradeID   string `json:"trade_id"`  // Affected trade
	BookID    string `json:"book_id"`   // Requested book
	AskerID   string `json:"asker_id"`  // User asking for the book
	OwnerID   string `json:"owner_id"`  // Book owner at creation time
	Status    string `json:"status"`    // Status label after the operation
	Operation string `json:"operation"` // request, accept, deny or withdraw
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
