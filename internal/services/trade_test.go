package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tradeMocks struct {
	reader *MockTradeReader
	writer *MockTradeWriter
	books  *MockBookReader
	kafka  *MockKafkaWriter
}

func newTradeMocks(ctrl *gomock.Controller) tradeMocks {
	return tradeMocks{
		reader: NewMockTradeReader(ctrl),
		writer: NewMockTradeWriter(ctrl),
		books:  NewMockBookReader(ctrl),
		kafka:  NewMockKafkaWriter(ctrl),
	}
}

func (m tradeMocks) service() *TradeService {
	return NewTradeService(m.reader, m.writer, m.books, m.kafka)
}

func TestTradeService_Request(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()
	book := &models.BookDB{BookID: bookID, Name: "Dune", UserID: "owner"}

	t.Run("creates pending trade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		saved := &models.TradeDB{TradeID: uuid.New(), AskerID: "asker", BookID: bookID, OwnerID: "owner", Status: models.TradePending}
		m.books.EXPECT().GetByID(ctx, bookID).Return(book, nil)
		m.writer.EXPECT().Save(ctx, "asker", bookID, "owner", models.TradePending).Return(saved, nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		trade, err := m.service().Request(ctx, "asker", bookID)
		require.NoError(t, err)
		assert.Equal(t, saved, trade)
	})

	t.Run("book does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.books.EXPECT().GetByID(ctx, bookID).Return(nil, nil)

		trade, err := m.service().Request(ctx, "asker", bookID)
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Nil(t, trade)
	})

	t.Run("own book rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.books.EXPECT().GetByID(ctx, bookID).Return(book, nil)

		trade, err := m.service().Request(ctx, "owner", bookID)
		assert.ErrorIs(t, err, ErrOwnBook)
		assert.Nil(t, trade)
	})

	t.Run("book lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.books.EXPECT().GetByID(ctx, bookID).Return(nil, errors.New("db error"))

		_, err := m.service().Request(ctx, "asker", bookID)
		assert.EqualError(t, err, "db error")
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.books.EXPECT().GetByID(ctx, bookID).Return(book, nil)
		m.writer.EXPECT().Save(ctx, "asker", bookID, "owner", models.TradePending).Return(nil, errors.New("save error"))

		_, err := m.service().Request(ctx, "asker", bookID)
		assert.EqualError(t, err, "save error")
	})
}

func TestTradeService_AcceptDeny(t *testing.T) {
	ctx := context.Background()
	tradeID := uuid.New()

	ops := []struct {
		name   string
		status models.TradeStatus
		call   func(s *TradeService, ownerID string) error
	}{
		{
			name:   "accept",
			status: models.TradeAccepted,
			call:   func(s *TradeService, ownerID string) error { return s.Accept(ctx, ownerID, tradeID) },
		},
		{
			name:   "deny",
			status: models.TradeDenied,
			call:   func(s *TradeService, ownerID string) error { return s.Deny(ctx, ownerID, tradeID) },
		},
	}

	for _, op := range ops {
		t.Run(op.name+" pending trade", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTradeMocks(ctrl)

			m.reader.EXPECT().GetByID(ctx, tradeID).Return(&models.TradeDB{TradeID: tradeID, OwnerID: "owner", Status: models.TradePending}, nil)
			m.writer.EXPECT().UpdateStatus(ctx, tradeID, op.status).Return(nil)
			m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

			assert.NoError(t, op.call(m.service(), "owner"))
		})

		t.Run(op.name+" decided trade", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTradeMocks(ctrl)

			m.reader.EXPECT().GetByID(ctx, tradeID).Return(&models.TradeDB{TradeID: tradeID, OwnerID: "owner", Status: models.TradeDenied}, nil)
			m.writer.EXPECT().UpdateStatus(ctx, tradeID, op.status).Return(nil)
			m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

			assert.NoError(t, op.call(m.service(), "owner"))
		})

		t.Run(op.name+" missing trade", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTradeMocks(ctrl)

			m.reader.EXPECT().GetByID(ctx, tradeID).Return(nil, nil)

			assert.ErrorIs(t, op.call(m.service(), "owner"), ErrTradeNotFound)
		})

		t.Run(op.name+" by another user", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTradeMocks(ctrl)

			m.reader.EXPECT().GetByID(ctx, tradeID).Return(&models.TradeDB{TradeID: tradeID, OwnerID: "owner", Status: models.TradePending}, nil)

			assert.ErrorIs(t, op.call(m.service(), "intruder"), ErrNotTradeOwner)
		})

		t.Run(op.name+" update error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTradeMocks(ctrl)

			m.reader.EXPECT().GetByID(ctx, tradeID).Return(&models.TradeDB{TradeID: tradeID, OwnerID: "owner"}, nil)
			m.writer.EXPECT().UpdateStatus(ctx, tradeID, op.status).Return(errors.New("db error"))

			assert.EqualError(t, op.call(m.service(), "owner"), "db error")
		})
	}
}

func TestTradeService_Withdraw(t *testing.T) {
	ctx := context.Background()
	tradeID := uuid.New()

	for _, status := range []models.TradeStatus{models.TradePending, models.TradeAccepted, models.TradeDenied} {
		t.Run("withdraw "+status.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newTradeMocks(ctrl)

			m.writer.EXPECT().DeleteByIDAndAskerID(ctx, tradeID, "asker").
				Return(&models.TradeDB{TradeID: tradeID, AskerID: "asker", Status: status}, nil)
			m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

			assert.NoError(t, m.service().Withdraw(ctx, "asker", tradeID))
		})
	}

	t.Run("not requested by caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.writer.EXPECT().DeleteByIDAndAskerID(ctx, tradeID, "other").Return(nil, nil)

		assert.ErrorIs(t, m.service().Withdraw(ctx, "other", tradeID), ErrTradeNotFound)
	})

	t.Run("delete error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.writer.EXPECT().DeleteByIDAndAskerID(ctx, tradeID, "asker").Return(nil, errors.New("db error"))

		assert.EqualError(t, m.service().Withdraw(ctx, "asker", tradeID), "db error")
	})
}

func TestTradeService_ListAsOwner(t *testing.T) {
	ctx := context.Background()

	dune := &models.BookDB{BookID: uuid.New(), Name: "Dune", UserID: "owner"}
	emma := &models.BookDB{BookID: uuid.New(), Name: "Emma", UserID: "owner"}

	t.Run("buckets by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		trades := []models.TradeDB{
			{TradeID: uuid.New(), AskerID: "a", BookID: dune.BookID, OwnerID: "owner", Status: models.TradePending},
			{TradeID: uuid.New(), AskerID: "b", BookID: emma.BookID, OwnerID: "owner", Status: models.TradeAccepted},
			{TradeID: uuid.New(), AskerID: "c", BookID: dune.BookID, OwnerID: "owner", Status: models.TradePending},
		}
		m.reader.EXPECT().ListByOwnerID(ctx, "owner").Return(trades, nil)
		m.books.EXPECT().GetByID(gomock.Any(), dune.BookID).Return(dune, nil).Times(2)
		m.books.EXPECT().GetByID(gomock.Any(), emma.BookID).Return(emma, nil)

		got, err := m.service().ListAsOwner(ctx, "owner")
		require.NoError(t, err)

		require.Len(t, got.Pending, 2)
		require.Len(t, got.Accepted, 1)
		assert.Empty(t, got.Denied)
		assert.NotNil(t, got.Denied)

		assert.Equal(t, trades[0].TradeID, got.Pending[0].TradeID)
		assert.Equal(t, trades[2].TradeID, got.Pending[1].TradeID)
		assert.Equal(t, "Dune", got.Pending[0].BookName)
		assert.Equal(t, "PENDING", got.Pending[0].StatusText)
		assert.Equal(t, "Emma", got.Accepted[0].BookName)
		assert.Equal(t, "ACCEPTED", got.Accepted[0].StatusText)
	})

	t.Run("no trades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.reader.EXPECT().ListByOwnerID(ctx, "owner").Return(nil, nil)

		got, err := m.service().ListAsOwner(ctx, "owner")
		require.NoError(t, err)
		assert.Empty(t, got.Pending)
		assert.Empty(t, got.Accepted)
		assert.Empty(t, got.Denied)
	})

	t.Run("failed book lookup fails the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		trades := []models.TradeDB{
			{TradeID: uuid.New(), BookID: dune.BookID, OwnerID: "owner"},
			{TradeID: uuid.New(), BookID: emma.BookID, OwnerID: "owner"},
		}
		m.reader.EXPECT().ListByOwnerID(ctx, "owner").Return(trades, nil)
		m.books.EXPECT().GetByID(gomock.Any(), dune.BookID).Return(dune, nil).AnyTimes()
		m.books.EXPECT().GetByID(gomock.Any(), emma.BookID).Return(nil, errors.New("db error"))

		got, err := m.service().ListAsOwner(ctx, "owner")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		m.reader.EXPECT().ListByOwnerID(ctx, "owner").Return(nil, errors.New("db error"))

		_, err := m.service().ListAsOwner(ctx, "owner")
		assert.EqualError(t, err, "db error")
	})
}

func TestTradeService_ListAsAsker(t *testing.T) {
	ctx := context.Background()
	dune := &models.BookDB{BookID: uuid.New(), Name: "Dune", UserID: "owner"}

	t.Run("joins book names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		trades := []models.TradeDB{
			{TradeID: uuid.New(), AskerID: "asker", BookID: dune.BookID, OwnerID: "owner", Status: models.TradeDenied},
		}
		m.reader.EXPECT().ListByAskerID(ctx, "asker").Return(trades, nil)
		m.books.EXPECT().GetByID(gomock.Any(), dune.BookID).Return(dune, nil)

		got, err := m.service().ListAsAsker(ctx, "asker")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Dune", got[0].BookName)
		assert.Equal(t, "DENIED", got[0].StatusText)
	})

	t.Run("missing book fails the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newTradeMocks(ctrl)

		trades := []models.TradeDB{{TradeID: uuid.New(), AskerID: "asker", BookID: dune.BookID}}
		m.reader.EXPECT().ListByAskerID(ctx, "asker").Return(trades, nil)
		m.books.EXPECT().GetByID(gomock.Any(), dune.BookID).Return(nil, nil)

		got, err := m.service().ListAsAsker(ctx, "asker")
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Nil(t, got)
	})
}

func TestTradeService_publishTrade(t *testing.T) {
	ctx := context.Background()
	trade := &models.TradeDB{
		TradeID: uuid.New(),
		AskerID: "asker",
		BookID:  uuid.New(),
		OwnerID: "owner",
		Status:  models.TradeAccepted,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := &TradeService{kafkaWriter: mockKafka}

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte(trade.TradeID.String()), msgs[0].Key)

			var event models.TradeEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, trade.TradeID.String(), event.TradeID)
			assert.Equal(t, trade.BookID.String(), event.BookID)
			assert.Equal(t, "asker", event.AskerID)
			assert.Equal(t, "owner", event.OwnerID)
			assert.Equal(t, "ACCEPTED", event.Status)
			assert.Equal(t, models.TradeOperationAccept, event.Operation)
			assert.NotEmpty(t, event.EventID)
			return nil
		})
	svc.publishTrade(ctx, trade, models.TradeOperationAccept)

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error"))
	svc.publishTrade(ctx, trade, models.TradeOperationAccept)

	svcNil := &TradeService{kafkaWriter: nil}
	assert.NotPanics(t, func() {
		svcNil.publishTrade(ctx, trade, models.TradeOperationAccept)
	})
}
