package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVideoWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	lockQuery := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1::int, $2::int)`)
	insertQuery := regexp.QuoteMeta(`
		INSERT INTO videos (category_id, id, title, url, description, created_at)
		SELECT $1, COALESCE(MAX(id), 0) + 1, $2, $3, $4, NOW()
		FROM videos
		WHERE category_id = $1
		RETURNING id
	`)

	const embedURL = "https://www.youtube.com/embed/NybHckSEQBI"

	t.Run("locks category scope then inserts next id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVideoWriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(videosLockClass, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(insertQuery).WithArgs(int64(1), "Algebra", embedURL, "basics").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectCommit()

		id, err := repo.Save(ctx, 1, "Algebra", embedURL, "basics")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVideoWriteRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(videosLockClass, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(insertQuery).WithArgs(int64(1), "Algebra", embedURL, "basics").
			WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		id, err := repo.Save(ctx, 1, "Algebra", embedURL, "basics")
		assert.Error(t, err)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
