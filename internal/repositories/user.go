package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given identity id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, display_name, username, public_repos,
		       settings_name, settings_city, settings_state,
		       created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)
	logQuery(query, []any{userID}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Upsert creates the user on first login and refreshes the GitHub fields on
// later ones. Settings are never touched.
func (r *UserWriteRepository) Upsert(ctx context.Context, userID, displayName, username string, publicRepos int) error {
	const query = `
		INSERT INTO users (user_id, display_name, username, public_repos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    username = EXCLUDED.username,
		    public_repos = EXCLUDED.public_repos,
		    updated_at = NOW()
	`
	args := []any{userID, displayName, username, publicRepos}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// UpdateSettings overwrites all three settings fields of the user.
func (r *UserWriteRepository) UpdateSettings(ctx context.Context, userID string, settings models.Settings) error {
	const query = `
		UPDATE users
		SET settings_name = $2, settings_city = $3, settings_state = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, settings.Name, settings.City, settings.State}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}
