package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/infrastructure/media"
	"carelink-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMediaStore records destroy calls and serves canned results
type fakeMediaStore struct {
	uploads        []*media.Upload
	destroyResults map[string]string
	destroyErrors  map[string]error
	destroyed      []string
}

func (f *fakeMediaStore) Upload(ctx context.Context, file interface{}) (*media.Upload, error) {
	up := &media.Upload{
		URL:      "https://cdn/img",
		PublicID: "public-id",
	}
	f.uploads = append(f.uploads, up)
	return up, nil
}

func (f *fakeMediaStore) Destroy(ctx context.Context, publicID string) (string, error) {
	f.destroyed = append(f.destroyed, publicID)
	if err, ok := f.destroyErrors[publicID]; ok {
		return "", err
	}
	if result, ok := f.destroyResults[publicID]; ok {
		return result, nil
	}
	return "ok", nil
}

func newBlogUsecase(t *testing.T) (BlogUsecase, sqlmock.Sqlmock, *fakeMediaStore) {
	t.Helper()
	db, mock := newMockDB(t)
	store := &fakeMediaStore{
		destroyResults: map[string]string{},
		destroyErrors:  map[string]error{},
	}
	uc := NewBlogUsecase(db, logrus.New(), repository.NewBlogRepository(), store)
	return uc, mock, store
}

func expectBlogLookup(mock sqlmock.Sqlmock, blogID uuid.UUID, imagePublicIDs ...string) {
	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WithArgs(blogID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "title", "slug", "content", "likes_count", "created_at"}).
			AddRow(blogID.String(), uuid.New().String(), "Title", "title", "Body", 0, time.Now()))

	imageRows := sqlmock.NewRows([]string{"id", "blog_id", "url", "public_id", "position"})
	for i, publicID := range imagePublicIDs {
		imageRows.AddRow(i+1, blogID.String(), "https://cdn/"+publicID, publicID, i+1)
	}
	mock.ExpectQuery(`SELECT \* FROM "blog_images" WHERE "blog_images"\."blog_id" = \$1`).
		WithArgs(blogID.String()).
		WillReturnRows(imageRows)
}

func TestUpdateBlogKeepsStoredSEOFields(t *testing.T) {
	uc, mock, store := newBlogUsecase(t)

	blogID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WithArgs(blogID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "title", "slug", "content", "seo_metadata", "likes_count", "created_at"}).
			AddRow(blogID.String(), uuid.New().String(), "Title", "title", "Body",
				[]byte(`{"title":"Old SEO","keywords":"health,clinic"}`), 0, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "blog_images" WHERE "blog_images"\."blog_id" = \$1`).
		WithArgs(blogID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id", "url", "public_id", "position"}))
	mock.ExpectExec(`UPDATE "blogs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	seoTitle := "Fresh SEO"
	resp, err := uc.UpdateBlog(context.Background(), blogID, &dto.UpdateBlogRequest{SEOTitle: &seoTitle})
	require.NoError(t, err)
	assert.Equal(t, "Fresh SEO", resp.SEOMetadata["title"])
	assert.Equal(t, "health,clinic", resp.SEOMetadata["keywords"])
	assert.Empty(t, store.destroyed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeInsertsWhenNotLiked(t *testing.T) {
	uc, mock, _ := newBlogUsecase(t)

	blogID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	expectBlogLookup(mock, blogID)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(`INSERT INTO blog_likes`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))
	mock.ExpectExec(`UPDATE blogs SET likes_count = \$1 WHERE id = \$2`).
		WithArgs(5, blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := uc.ToggleLike(context.Background(), blogID, userID)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, 5, resp.LikesCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeDeletesWhenAlreadyLiked(t *testing.T) {
	uc, mock, _ := newBlogUsecase(t)

	blogID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	expectBlogLookup(mock, blogID)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectExec(`DELETE FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs(blogID.String(), userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_likes WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))
	mock.ExpectExec(`UPDATE blogs SET likes_count = \$1 WHERE id = \$2`).
		WithArgs(4, blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := uc.ToggleLike(context.Background(), blogID, userID)
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, 4, resp.LikesCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeBlogNotFound(t *testing.T) {
	uc, mock, _ := newBlogUsecase(t)

	blogID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WithArgs(blogID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := uc.ToggleLike(context.Background(), blogID, uuid.New())
	assert.ErrorIs(t, err, ErrBlogNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlogRemovesChildRowsFirst(t *testing.T) {
	uc, mock, store := newBlogUsecase(t)

	blogID := uuid.New()

	mock.ExpectBegin()
	expectBlogLookup(mock, blogID, "img-1", "img-2")
	mock.ExpectExec(`DELETE FROM "blog_images" WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "blog_comments" WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "blog_likes" WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "blog_shares" WHERE blog_id = \$1`).
		WithArgs(blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "blogs" WHERE id = \$1`).
		WithArgs(blogID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := uc.DeleteBlog(context.Background(), blogID)
	require.NoError(t, err)
	assert.Empty(t, resp.MediaCleanupFailures)
	assert.Equal(t, []string{"img-1", "img-2"}, store.destroyed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlogReportsMediaCleanupFailures(t *testing.T) {
	uc, mock, store := newBlogUsecase(t)
	store.destroyErrors["img-1"] = errors.New("host unreachable")
	store.destroyResults["img-2"] = "not found"

	blogID := uuid.New()

	mock.ExpectBegin()
	expectBlogLookup(mock, blogID, "img-1", "img-2")
	mock.ExpectExec(`DELETE FROM "blog_images"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "blog_comments"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "blog_likes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "blog_shares"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "blogs"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// database deletion succeeds even though the media host misbehaves
	resp, err := uc.DeleteBlog(context.Background(), blogID)
	require.NoError(t, err)
	require.Len(t, resp.MediaCleanupFailures, 2)
	assert.Equal(t, "img-1", resp.MediaCleanupFailures[0].PublicID)
	assert.Equal(t, "host unreachable", resp.MediaCleanupFailures[0].Reason)
	assert.Equal(t, "img-2", resp.MediaCleanupFailures[1].PublicID)
	assert.Equal(t, "not found", resp.MediaCleanupFailures[1].Reason)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlogNotFoundTouchesNothing(t *testing.T) {
	uc, mock, store := newBlogUsecase(t)

	blogID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "blogs" WHERE id = \$1`).
		WithArgs(blogID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := uc.DeleteBlog(context.Background(), blogID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
	assert.Empty(t, store.destroyed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParsePublishedAt(t *testing.T) {
	got, err := parsePublishedAt("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parsePublishedAt("2025-06-01T10:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), got.UTC())

	_, err = parsePublishedAt("01-06-2025")
	assert.ErrorIs(t, err, ErrInvalidPublished)
}
