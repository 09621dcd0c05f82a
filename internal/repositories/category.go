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

// categoriesLockKey is the advisory-lock key serializing category id
// assignment. The lock lives in Postgres, so it also serializes writers
// from other server instances.
const categoriesLockKey = 80371

type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns all categories with their videos, both ordered by id.
// Ids are insertion-ordered by construction, so this preserves
// insertion order.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.Category, error) {
	const categoriesQuery = `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY id
	`
	const videosQuery = `
		SELECT category_id, id, title, url, description, created_at
		FROM videos
		ORDER BY category_id, id
	`

	var rows []models.CategoryDB
	if err := r.db.SelectContext(ctx, &rows, categoriesQuery); err != nil {
		logger.Log.Errorw("failed to select categories", "error", err)
		return nil, err
	}

	var videoRows []models.VideoDB
	if err := r.db.SelectContext(ctx, &videoRows, videosQuery); err != nil {
		logger.Log.Errorw("failed to select videos", "error", err)
		return nil, err
	}

	byCategory := make(map[int64][]models.Video, len(rows))
	for _, v := range videoRows {
		byCategory[v.CategoryID] = append(byCategory[v.CategoryID], models.Video{
			ID:          v.ID,
			Title:       v.Title,
			URL:         v.URL,
			Description: v.Description,
		})
	}

	categories := make([]models.Category, 0, len(rows))
	for _, c := range rows {
		videos := byCategory[c.ID]
		if videos == nil {
			videos = []models.Video{}
		}
		categories = append(categories, models.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Videos:      videos,
		})
	}

	logger.Log.Infow("categories listed", "count", len(categories))
	return categories, nil
}

// GetByID returns a single category aggregate, or nil when no category
// with that id exists.
func (r *CategoryReadRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	const categoryQuery = `
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = $1
	`
	const videosQuery = `
		SELECT category_id, id, title, url, description, created_at
		FROM videos
		WHERE category_id = $1
		ORDER BY id
	`

	var row models.CategoryDB
	err := r.db.GetContext(ctx, &row, categoryQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get category", "id", id, "error", err)
		return nil, err
	}

	var videoRows []models.VideoDB
	if err := r.db.SelectContext(ctx, &videoRows, videosQuery, id); err != nil {
		logger.Log.Errorw("failed to select category videos", "id", id, "error", err)
		return nil, err
	}

	videos := make([]models.Video, 0, len(videoRows))
	for _, v := range videoRows {
		videos = append(videos, models.Video{
			ID:          v.ID,
			Title:       v.Title,
			URL:         v.URL,
			Description: v.Description,
		})
	}

	return &models.Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Videos:      videos,
	}, nil
}

type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

// Save inserts a category with id = max(id)+1 (1 when the table is
// empty). The advisory lock makes the read-max-and-insert sequence
// atomic across concurrent writers, so ids stay sequential without
// duplicates or gaps.
func (r *CategoryWriteRepository) Save(ctx context.Context, name, description string) (*models.Category, error) {
	const insertQuery = `
		INSERT INTO categories (id, name, description, created_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, NOW()
		FROM categories
		RETURNING id
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, categoriesLockKey); err != nil {
		logger.Log.Errorw("failed to take category lock", "error", err)
		return nil, err
	}

	var id int64
	if err := tx.GetContext(ctx, &id, insertQuery, name, description); err != nil {
		logger.Log.Errorw("failed to insert category",
			"query", strings.Join(strings.Fields(insertQuery), " "),
			"name", name,
			"error", err,
		)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit category insert", "error", err)
		return nil, err
	}

	logger.Log.Infow("category created", "id", id, "name", name)

	return &models.Category{
		ID:          id,
		Name:        name,
		Description: description,
		Videos:      []models.Video{},
	}, nil
}
