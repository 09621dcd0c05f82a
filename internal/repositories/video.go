package repositories

import (
	"context"
	"strings"

	"github.com/dmkaawya/kedu-api/internal/logger"
	"github.com/jmoiron/sqlx"
)

// videosLockClass namespaces the two-key advisory locks used for video
// id assignment; the second key is the owning category id. Locking per
// category keeps writers to different categories independent.
const videosLockClass = 80372

type VideoWriteRepository struct {
	db *sqlx.DB
}

func NewVideoWriteRepository(db *sqlx.DB) *VideoWriteRepository {
	return &VideoWriteRepository{db: db}
}

// Save appends a video to its category with id = max(id)+1 within that
// category (1 when the category has no videos). The per-category
// advisory lock serializes the read-max-and-insert sequence.
func (r *VideoWriteRepository) Save(ctx context.Context, categoryID int64, title, url, description string) (int64, error) {
	const insertQuery = `
		INSERT INTO videos (category_id, id, title, url, description, created_at)
		SELECT $1, COALESCE(MAX(id), 0) + 1, $2, $3, $4, NOW()
		FROM videos
		WHERE category_id = $1
		RETURNING id
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock($1::int, $2::int)`,
		videosLockClass, categoryID,
	); err != nil {
		logger.Log.Errorw("failed to take video lock", "category_id", categoryID, "error", err)
		return 0, err
	}

	var id int64
	if err := tx.GetContext(ctx, &id, insertQuery, categoryID, title, url, description); err != nil {
		logger.Log.Errorw("failed to insert video",
			"query", strings.Join(strings.Fields(insertQuery), " "),
			"category_id", categoryID,
			"title", title,
			"error", err,
		)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit video insert", "category_id", categoryID, "error", err)
		return 0, err
	}

	logger.Log.Infow("video created", "category_id", categoryID, "id", id, "title", title)
	return id, nil
}
