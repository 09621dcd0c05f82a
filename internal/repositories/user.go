package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/dmkaawya/kedu-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the exact username, or nil when
// no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

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

// Save upserts a user; the password is expected to be hashed already.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, role string) error {
	const query = `
		INSERT INTO users (username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role,
		    updated_at = NOW()
	`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash, role)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user upserted",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
