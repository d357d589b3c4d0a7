package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// ErrUserNotFound is returned when the caller has no user record.
var ErrUserNotFound = errors.New("user not found")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Upsert(ctx context.Context, userID, displayName, username string, publicRepos int) error
	UpdateSettings(ctx context.Context, userID string, settings models.Settings) error
}

// SettingsService reads and updates the user-editable profile.
type SettingsService struct {
	reader UserReader
	writer UserWriter
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(reader UserReader, writer UserWriter) *SettingsService {
	return &SettingsService{
		reader: reader,
		writer: writer,
	}
}

// GetSettings returns the caller's settings. Unset fields are empty strings.
func (svc *SettingsService) GetSettings(ctx context.Context, userID string) (*models.Settings, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}

	settings := user.Settings()
	return &settings, nil
}

// UpdateSettings overwrites each field for which a non-empty value was
// submitted. An empty value leaves the stored field unchanged, so a field
// cannot be cleared once set.
func (svc *SettingsService) UpdateSettings(ctx context.Context, userID string, update models.Settings) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "userID", userID)
		return ErrUserNotFound
	}

	settings := user.Settings()
	if update.Name != "" {
		settings.Name = update.Name
	}
	if update.City != "" {
		settings.City = update.City
	}
	if update.State != "" {
		settings.State = update.State
	}

	if err := svc.writer.UpdateSettings(ctx, userID, settings); err != nil {
		logger.Log.Errorw("failed to save settings", "userID", userID, "err", err)
		return err
	}

	return nil
}
