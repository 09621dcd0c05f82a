package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCategoryReadRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	categoriesQuery := regexp.QuoteMeta(`
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY id
	`)
	videosQuery := regexp.QuoteMeta(`
		SELECT category_id, id, title, url, description, created_at
		FROM videos
		ORDER BY category_id, id
	`)

	t.Run("assembles videos under their categories", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryReadRepository(db)

		mock.ExpectQuery(categoriesQuery).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
				AddRow(1, "Mathematics", "Math lessons", now).
				AddRow(2, "Science", "Science lessons", now))
		mock.ExpectQuery(videosQuery).WillReturnRows(
			sqlmock.NewRows([]string{"category_id", "id", "title", "url", "description", "created_at"}).
				AddRow(1, 1, "Algebra", "https://www.youtube.com/embed/NybHckSEQBI", "basics", now).
				AddRow(1, 2, "Geometry", "https://www.youtube.com/embed/2xyMn-e-q6A", "shapes", now))

		categories, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, categories, 2)

		assert.Equal(t, int64(1), categories[0].ID)
		assert.Len(t, categories[0].Videos, 2)
		assert.Equal(t, int64(1), categories[0].Videos[0].ID)
		assert.Equal(t, int64(2), categories[0].Videos[1].ID)

		// A category without videos gets an empty slice, not nil
		assert.Equal(t, int64(2), categories[1].ID)
		assert.NotNil(t, categories[1].Videos)
		assert.Empty(t, categories[1].Videos)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryReadRepository(db)

		mock.ExpectQuery(categoriesQuery).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_at"}))
		mock.ExpectQuery(videosQuery).WillReturnRows(
			sqlmock.NewRows([]string{"category_id", "id", "title", "url", "description", "created_at"}))

		categories, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryReadRepository(db)

		mock.ExpectQuery(categoriesQuery).WillReturnError(errors.New("connection refused"))

		categories, err := repo.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	categoryQuery := regexp.QuoteMeta(`
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = $1
	`)
	videosQuery := regexp.QuoteMeta(`
		SELECT category_id, id, title, url, description, created_at
		FROM videos
		WHERE category_id = $1
		ORDER BY id
	`)

	t.Run("found with videos", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryReadRepository(db)

		mock.ExpectQuery(categoryQuery).WithArgs(int64(1)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
				AddRow(1, "Mathematics", "Math lessons", now))
		mock.ExpectQuery(videosQuery).WithArgs(int64(1)).WillReturnRows(
			sqlmock.NewRows([]string{"category_id", "id", "title", "url", "description", "created_at"}).
				AddRow(1, 1, "Algebra", "https://www.youtube.com/embed/NybHckSEQBI", "basics", now))

		category, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, "Mathematics", category.Name)
		assert.Len(t, category.Videos, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryReadRepository(db)

		mock.ExpectQuery(categoryQuery).WithArgs(int64(42)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "created_at"}))

		category, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	lockQuery := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1)`)
	insertQuery := regexp.QuoteMeta(`
		INSERT INTO categories (id, name, description, created_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, NOW()
		FROM categories
		RETURNING id
	`)

	t.Run("locks scope then inserts next id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryWriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(categoriesLockKey).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(insertQuery).WithArgs("Art", "Drawing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
		mock.ExpectCommit()

		category, err := repo.Save(ctx, "Art", "Drawing")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), category.ID)
		assert.Equal(t, "Art", category.Name)
		assert.Equal(t, "Drawing", category.Description)
		assert.NotNil(t, category.Videos)
		assert.Empty(t, category.Videos)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryWriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(categoriesLockKey).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(insertQuery).WithArgs("Art", "Drawing").
			WillReturnError(errors.New("connection refused"))
		mock.ExpectRollback()

		category, err := repo.Save(ctx, "Art", "Drawing")
		assert.Error(t, err)
		assert.Nil(t, category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
