package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/metrics"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Error variables
var (
	ErrTradeNotFound = errors.New("trade not found")
	ErrNotTradeOwner = errors.New("trade is addressed to another owner")
	ErrOwnBook       = errors.New("cannot request a trade on your own book")
)

// TradeReader defines read-only operations for trades.
type TradeReader interface {
	GetByID(ctx context.Context, tradeID uuid.UUID) (*models.TradeDB, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]models.TradeDB, error)
	ListByAskerID(ctx context.Context, askerID string) ([]models.TradeDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// TradeService runs the trade lifecycle: PENDING on request, then ACCEPTED or
// DENIED by the owner. Transitions are not guarded, so an owner may flip a
// decided trade again.
type TradeService struct {
	reader      TradeReader
	writer      TradeWriter
	books       BookReader
	kafkaWriter KafkaWriter
}

// NewTradeService creates a new TradeService. kafkaWriter may be nil.
func NewTradeService(
	reader TradeReader,
	writer TradeWriter,
	books BookReader,
	kafkaWriter KafkaWriter,
) *TradeService {
	return &TradeService{
		reader:      reader,
		writer:      writer,
		books:       books,
		kafkaWriter: kafkaWriter,
	}
}

// publishTrade publishes a trade event to Kafka and records the operation.
func (s *TradeService) publishTrade(ctx context.Context, trade *models.TradeDB, operation string) {
	metrics.RecordTradeOperation(operation)

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "trade_id", trade.TradeID)
		return
	}

	event := models.TradeEvent{
		EventID:   uuid.NewString(),
		TradeID:   trade.TradeID.String(),
		BookID:    trade.BookID.String(),
		AskerID:   trade.AskerID,
		OwnerID:   trade.OwnerID,
		Status:    trade.Status.String(),
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal trade event for Kafka", "trade_id", event.TradeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TradeID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish trade event to Kafka", "trade_id", event.TradeID, "error", err)
	} else {
		logger.Log.Infow("Trade event published to Kafka", "trade_id", event.TradeID, "operation", operation)
	}
}

// Request creates a PENDING trade from askerID on bookID. The owner id is
// copied from the book at this moment. Duplicate requests are allowed.
func (s *TradeService) Request(ctx context.Context, askerID string, bookID uuid.UUID) (*models.TradeDB, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		logger.Log.Warnw("requested book does not exist", "bookID", bookID)
		return nil, ErrBookNotFound
	}
	if book.UserID == askerID {
		return nil, ErrOwnBook
	}

	trade, err := s.writer.Save(ctx, askerID, bookID, book.UserID, models.TradePending)
	if err != nil {
		logger.Log.Errorw("failed to save trade", "askerID", askerID, "bookID", bookID, "error", err)
		return nil, err
	}

	s.publishTrade(ctx, trade, models.TradeOperationRequest)
	return trade, nil
}

// Accept marks a trade addressed to ownerID as ACCEPTED.
func (s *TradeService) Accept(ctx context.Context, ownerID string, tradeID uuid.UUID) error {
	return s.setStatus(ctx, ownerID, tradeID, models.TradeAccepted, models.TradeOperationAccept)
}

// Deny marks a trade addressed to ownerID as DENIED.
func (s *TradeService) Deny(ctx context.Context, ownerID string, tradeID uuid.UUID) error {
	return s.setStatus(ctx, ownerID, tradeID, models.TradeDenied, models.TradeOperationDeny)
}

func (s *TradeService) setStatus(ctx context.Context, ownerID string, tradeID uuid.UUID, status models.TradeStatus, operation string) error {
	trade, err := s.reader.GetByID(ctx, tradeID)
	if err != nil {
		logger.Log.Errorw("failed to get trade", "tradeID", tradeID, "error", err)
		return err
	}
	if trade == nil {
		logger.Log.Warnw("trade does not exist", "tradeID", tradeID)
		return ErrTradeNotFound
	}
	if trade.OwnerID != ownerID {
		logger.Log.Warnw("trade not addressed to caller", "tradeID", tradeID, "ownerID", ownerID)
		return ErrNotTradeOwner
	}
	if trade.Status != models.TradePending {
		logger.Log.Warnw("changing status of a decided trade",
			"tradeID", tradeID, "from", trade.Status.String(), "to", status.String())
	}

	if err := s.writer.UpdateStatus(ctx, tradeID, status); err != nil {
		logger.Log.Errorw("failed to update trade status", "tradeID", tradeID, "status", status.String(), "error", err)
		return err
	}

	trade.Status = status
	s.publishTrade(ctx, trade, operation)
	return nil
}

// Withdraw deletes a trade requested by askerID, whatever its status.
func (s *TradeService) Withdraw(ctx context.Context, askerID string, tradeID uuid.UUID) error {
	trade, err := s.writer.DeleteByIDAndAskerID(ctx, tradeID, askerID)
	if err != nil {
		logger.Log.Errorw("failed to delete trade", "tradeID", tradeID, "askerID", askerID, "error", err)
		return err
	}
	if trade == nil {
		logger.Log.Warnw("trade not requested by caller", "tradeID", tradeID, "askerID", askerID)
		return ErrTradeNotFound
	}

	s.publishTrade(ctx, trade, models.TradeOperationWithdraw)
	return nil
}

// ListAsOwner returns the trades addressed to ownerID, bucketed by status.
func (s *TradeService) ListAsOwner(ctx context.Context, ownerID string) (*models.OwnerTrades, error) {
	trades, err := s.reader.ListByOwnerID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list trades by owner", "ownerID", ownerID, "error", err)
		return nil, err
	}

	views, err := s.joinBookNames(ctx, trades)
	if err != nil {
		return nil, err
	}

	result := &models.OwnerTrades{
		Pending:  []models.TradeView{},
		Accepted: []models.TradeView{},
		Denied:   []models.TradeView{},
	}
	for _, v := range views {
		switch v.Status {
		case models.TradePending:
			result.Pending = append(result.Pending, v)
		case models.TradeAccepted:
			result.Accepted = append(result.Accepted, v)
		case models.TradeDenied:
			result.Denied = append(result.Denied, v)
		}
	}
	return result, nil
}

// ListAsAsker returns the trades requested by askerID with book names and status labels.
func (s *TradeService) ListAsAsker(ctx context.Context, askerID string) ([]models.TradeView, error) {
	trades, err := s.reader.ListByAskerID(ctx, askerID)
	if err != nil {
		logger.Log.Errorw("failed to list trades by asker", "askerID", askerID, "error", err)
		return nil, err
	}

	return s.joinBookNames(ctx, trades)
}

// joinBookNames looks up the book of every trade concurrently. The first
// failed lookup cancels the others and fails the whole join.
func (s *TradeService) joinBookNames(ctx context.Context, trades []models.TradeDB) ([]models.TradeView, error) {
	views := make([]models.TradeView, len(trades))

	g, gctx := errgroup.WithContext(ctx)
	for i, trade := range trades {
		i, trade := i, trade
		g.Go(func() error {
			book, err := s.books.GetByID(gctx, trade.BookID)
			if err != nil {
				return err
			}
			if book == nil {
				logger.Log.Errorw("trade references a missing book", "tradeID", trade.TradeID, "bookID", trade.BookID)
				return ErrBookNotFound
			}

			views[i] = models.TradeView{
				TradeDB:    trade,
				BookName:   book.Name,
				StatusText: trade.Status.String(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to join book names", "error", err)
		return nil, err
	}
	return views, nil
}
