package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookService(ctrl *gomock.Controller) (*services.BookService, *services.MockBookReader, *services.MockBookWriter, *services.MockTradeWriter) {
	reader := services.NewMockBookReader(ctrl)
	writer := services.NewMockBookWriter(ctrl)
	trades := services.NewMockTradeWriter(ctrl)
	return services.NewBookService(reader, writer, trades), reader, writer, trades
}

func TestBookService_ListForViewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newBookService(ctrl)

	books := []models.BookDB{
		{BookID: uuid.New(), Name: "Dune", UserID: "1"},
		{BookID: uuid.New(), Name: "Emma", UserID: "2"},
		{BookID: uuid.New(), Name: "Ulysses", UserID: "1"},
	}
	reader.EXPECT().List(gomock.Any()).Return(books, nil)

	listings, err := svc.ListForViewer(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, listings, len(books))

	for i, l := range listings {
		assert.Equal(t, books[i], l.BookDB)
		assert.Equal(t, books[i].UserID == "1", l.Disabled, "book %s", l.Name)
	}
}

func TestBookService_ListForViewer_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newBookService(ctrl)
	reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

	listings, err := svc.ListForViewer(context.Background(), "1")
	assert.EqualError(t, err, "db error")
	assert.Nil(t, listings)
}

func TestBookService_ListOwnedBy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newBookService(ctrl)
	owned := []models.BookDB{{BookID: uuid.New(), Name: "Dune", UserID: "1"}}
	reader.EXPECT().ListByUserID(gomock.Any(), "1").Return(owned, nil)

	books, err := svc.ListOwnedBy(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, owned, books)
}

func TestBookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _ := newBookService(ctrl)

	tests := []struct {
		name      string
		input     string
		saveName  string
		writerErr error
		wantErr   error
	}{
		{name: "creates book", input: "Dune", saveName: "Dune"},
		{name: "trims name", input: "  Dune  ", saveName: "Dune"},
		{name: "empty name rejected", input: "", wantErr: services.ErrEmptyBookName},
		{name: "blank name rejected", input: "   ", wantErr: services.ErrEmptyBookName},
		{name: "writer error", input: "Dune", saveName: "Dune", writerErr: errors.New("save error"), wantErr: errors.New("save error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.saveName != "" {
				var saved *models.BookDB
				if tt.writerErr == nil {
					saved = &models.BookDB{BookID: uuid.New(), Name: tt.saveName, UserID: "1"}
				}
				writer.EXPECT().Save(gomock.Any(), tt.saveName, "1").Return(saved, tt.writerErr)
			}

			book, err := svc.Create(context.Background(), "1", tt.input)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, book)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.saveName, book.Name)
			assert.Equal(t, "1", book.UserID)
		})
	}
}

func TestBookService_DeleteOwned(t *testing.T) {
	bookID := uuid.New()

	tests := []struct {
		name       string
		deleted    int64
		deleteErr  error
		cascade    bool
		cascadeErr error
		wantErr    error
	}{
		{name: "owner deletes and cascades", deleted: 1, cascade: true},
		{name: "non-owner is a no-op", deleted: 0, wantErr: services.ErrBookNotFound},
		{name: "delete error", deleteErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "cascade error", deleted: 1, cascade: true, cascadeErr: errors.New("cascade error"), wantErr: errors.New("cascade error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, writer, trades := newBookService(ctrl)
			writer.EXPECT().DeleteByIDAndUserID(gomock.Any(), bookID, "1").Return(tt.deleted, tt.deleteErr)
			if tt.cascade {
				trades.EXPECT().DeleteByBookID(gomock.Any(), bookID).Return(int64(2), tt.cascadeErr)
			}

			err := svc.DeleteOwned(context.Background(), "1", bookID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
