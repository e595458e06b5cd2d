package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasLiked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository()

	blogID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	liked, err := repo.HasLiked(db, blogID, userID)
	require.NoError(t, err)
	assert.True(t, liked)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	liked, err = repo.HasLiked(db, blogID, userID)
	require.NoError(t, err)
	assert.False(t, liked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAndDeleteLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository()

	blogID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec(`INSERT INTO blog_likes \(blog_id, user_id, created_at\) VALUES \(\$1, \$2, NOW\(\)\)`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.InsertLike(db, blogID, userID))

	mock.ExpectExec(`DELETE FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteLike(db, blogID, userID))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLikesAndUpdateCounter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository()

	blogID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountLikes(db, blogID)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	mock.ExpectExec(`UPDATE blogs SET likes_count = \$1 WHERE id = \$2`).
		WithArgs(7, blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLikesCount(db, blogID, 7))

	assert.NoError(t, mock.ExpectationsWereMet())
}
