package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
)

// schema is applied in order on every start; each statement is idempotent.
// There are no foreign keys: the only integrity rule is the explicit
// trade cascade performed when a book is deleted.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id        TEXT PRIMARY KEY,
		display_name   TEXT NOT NULL DEFAULT '',
		username       TEXT NOT NULL DEFAULT '',
		public_repos   INTEGER NOT NULL DEFAULT 0,
		settings_name  TEXT NOT NULL DEFAULT '',
		settings_city  TEXT NOT NULL DEFAULT '',
		settings_state TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		book_id    UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS books_user_id_idx ON books (user_id)`,
	`CREATE TABLE IF NOT EXISTS trades (
		trade_id   UUID PRIMARY KEY,
		asker_id   TEXT NOT NULL,
		book_id    UUID NOT NULL,
		owner_id   TEXT NOT NULL,
		status     SMALLINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS trades_owner_id_idx ON trades (owner_id)`,
	`CREATE INDEX IF NOT EXISTS trades_asker_id_idx ON trades (asker_id)`,
	`CREATE INDEX IF NOT EXISTS trades_book_id_idx ON trades (book_id)`,
}

// Migrate creates the tables and indexes used by the repositories.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("schema migration failed", "statement", i, "error", err)
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	logger.Log.Infow("schema applied", "statements", len(schema))
	return nil
}
