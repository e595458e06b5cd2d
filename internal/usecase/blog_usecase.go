package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"carelink-backend/internal/converter"
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/domain/repository"
	"carelink-backend/internal/infrastructure/media"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound     = errors.New("blog not found")
	ErrSlugExists       = errors.New("slug already exists")
	ErrInvalidPublished = errors.New("invalid published_at, use RFC3339")
)

type BlogUsecase interface {
	CreateBlog(ctx context.Context, authorID uuid.UUID, req *dto.CreateBlogRequest) (*dto.BlogResponse, error)
	GetAllBlogs(ctx context.Context) (*dto.BlogListResponse, error)
	GetBlogBySlug(ctx context.Context, slug string) (*dto.BlogResponse, error)
	UpdateBlog(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	DeleteBlog(ctx context.Context, blogID uuid.UUID) (*dto.DeleteBlogResponse, error)
	ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (*dto.LikeToggleResponse, error)
	AddComment(ctx context.Context, blogID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, blogID uuid.UUID) (*dto.CommentListResponse, error)
	AddShare(ctx context.Context, blogID, userID uuid.UUID, req *dto.CreateShareRequest) (*dto.ShareResponse, error)
}

type blogUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	blogRepo   repository.BlogRepository
	mediaStore media.Store
}

func NewBlogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blogRepo repository.BlogRepository,
	mediaStore media.Store,
) BlogUsecase {
	return &blogUsecase{
		db:         db,
		log:        log,
		blogRepo:   blogRepo,
		mediaStore: mediaStore,
	}
}

// CreateBlog inserts the blog row and its image rows in one transaction.
// Media uploads happen before the transaction; when the transaction fails
// the uploaded media is destroyed best-effort.
func (u *blogUsecase) CreateBlog(ctx context.Context, authorID uuid.UUID, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	publishedAt, err := parsePublishedAt(req.PublishedAt)
	if err != nil {
		return nil, err
	}

	uploads, err := u.uploadImages(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		AuthorID:    authorID,
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		SEOMetadata: seoMetadata(req.SEOTitle, req.SEOKeywords),
		PublishedAt: publishedAt,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blogRepo.Create(tx, blog); err != nil {
		u.destroyUploads(ctx, uploads)
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrSlugExists
		}
		u.log.Warnf("Failed to create blog: %+v", err)
		return nil, err
	}

	// positions form a dense 1..N sequence in input order
	images := make([]entity.BlogImage, len(uploads))
	for i, up := range uploads {
		images[i] = entity.BlogImage{
			BlogID:   blog.ID,
			URL:      up.URL,
			PublicID: up.PublicID,
			Position: i + 1,
		}
	}
	if err := u.blogRepo.CreateImages(tx, images); err != nil {
		u.destroyUploads(ctx, uploads)
		u.log.Warnf("Failed to create blog images: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.destroyUploads(ctx, uploads)
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	blog.Images = images
	return converter.BlogToResponse(blog), nil
}

func (u *blogUsecase) GetAllBlogs(ctx context.Context) (*dto.BlogListResponse, error) {
	blogs, err := u.blogRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find blogs: %+v", err)
		return nil, err
	}

	responses := converter.BlogsToResponses(blogs)
	return &dto.BlogListResponse{
		Blogs: responses,
		Total: len(responses),
	}, nil
}

func (u *blogUsecase) GetBlogBySlug(ctx context.Context, slug string) (*dto.BlogResponse, error) {
	blog, err := u.blogRepo.FindBySlug(u.db.WithContext(ctx), slug)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	return converter.BlogToResponse(blog), nil
}

// UpdateBlog merges only the supplied fields into the stored row. When the
// request carries images the new set replaces the old one inside the same
// transaction; the replaced media is destroyed after commit, best-effort.
func (u *blogUsecase) UpdateBlog(ctx context.Context, blogID uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	var uploads []*media.Upload
	if len(req.Images) > 0 {
		var err error
		uploads, err = u.uploadImages(ctx, req.Images)
		if err != nil {
			return nil, err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	blog, err := u.blogRepo.FindByID(tx, blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		u.destroyUploads(ctx, uploads)
		return nil, err
	}
	if blog == nil {
		u.destroyUploads(ctx, uploads)
		return nil, ErrBlogNotFound
	}

	replaced := blog.Images
	blog.Images = nil

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Slug != nil {
		blog.Slug = *req.Slug
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.SEOTitle != nil || req.SEOKeywords != nil {
		// an absent field keeps the stored value
		seoTitle := metaString(blog.SEOMetadata, "title")
		seoKeywords := metaString(blog.SEOMetadata, "keywords")
		if req.SEOTitle != nil {
			seoTitle = *req.SEOTitle
		}
		if req.SEOKeywords != nil {
			seoKeywords = *req.SEOKeywords
		}
		blog.SEOMetadata = seoMetadata(seoTitle, seoKeywords)
	}
	if req.PublishedAt != nil {
		publishedAt, err := parsePublishedAt(*req.PublishedAt)
		if err != nil {
			u.destroyUploads(ctx, uploads)
			return nil, err
		}
		blog.PublishedAt = publishedAt
	}

	var newImages []entity.BlogImage
	if len(uploads) > 0 {
		if err := u.blogRepo.DeleteImages(tx, blog.ID); err != nil {
			u.log.Warnf("Failed to delete blog images: %+v", err)
			u.destroyUploads(ctx, uploads)
			return nil, err
		}
		newImages = make([]entity.BlogImage, len(uploads))
		for i, up := range uploads {
			newImages[i] = entity.BlogImage{
				BlogID:   blog.ID,
				URL:      up.URL,
				PublicID: up.PublicID,
				Position: i + 1,
			}
		}
		if err := u.blogRepo.CreateImages(tx, newImages); err != nil {
			u.log.Warnf("Failed to create blog images: %+v", err)
			u.destroyUploads(ctx, uploads)
			return nil, err
		}
	}

	if err := u.blogRepo.Update(tx, blog); err != nil {
		u.destroyUploads(ctx, uploads)
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrSlugExists
		}
		u.log.Warnf("Failed to update blog: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.destroyUploads(ctx, uploads)
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if len(uploads) > 0 {
		// replaced media cannot be rolled back; destroy after commit
		for _, img := range replaced {
			u.destroyQuietly(ctx, img.PublicID)
		}
		blog.Images = newImages
	} else {
		blog.Images = replaced
	}

	return converter.BlogToResponse(blog), nil
}

// DeleteBlog removes the blog and its child rows in one transaction, then
// destroys the hosted media best-effort. Media failures are reported in
// the response but never abort the deletion; the database rows are already
// gone.
func (u *blogUsecase) DeleteBlog(ctx context.Context, blogID uuid.UUID) (*dto.DeleteBlogResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	blog, err := u.blogRepo.FindByID(tx, blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	// child tables first; no database-level cascade is assumed
	if err := u.blogRepo.DeleteImages(tx, blogID); err != nil {
		u.log.Warnf("Failed to delete blog images: %+v", err)
		return nil, err
	}
	if err := u.blogRepo.DeleteComments(tx, blogID); err != nil {
		u.log.Warnf("Failed to delete blog comments: %+v", err)
		return nil, err
	}
	if err := u.blogRepo.DeleteLikes(tx, blogID); err != nil {
		u.log.Warnf("Failed to delete blog likes: %+v", err)
		return nil, err
	}
	if err := u.blogRepo.DeleteShares(tx, blogID); err != nil {
		u.log.Warnf("Failed to delete blog shares: %+v", err)
		return nil, err
	}
	if err := u.blogRepo.Delete(tx, blogID); err != nil {
		u.log.Warnf("Failed to delete blog: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	var failures []dto.MediaCleanupFailure
	for _, img := range blog.Images {
		result, err := u.mediaStore.Destroy(ctx, img.PublicID)
		if err != nil {
			u.log.Warnf("Failed to destroy media %s: %+v", img.PublicID, err)
			failures = append(failures, dto.MediaCleanupFailure{PublicID: img.PublicID, Reason: err.Error()})
			continue
		}
		if result != "ok" {
			u.log.Warnf("Media destroy for %s returned %q", img.PublicID, result)
			failures = append(failures, dto.MediaCleanupFailure{PublicID: img.PublicID, Reason: result})
		}
	}

	return &dto.DeleteBlogResponse{MediaCleanupFailures: failures}, nil
}

// ToggleLike flips the caller's like state and rewrites the denormalized
// counter from a live COUNT(*). Two concurrent toggles for the same pair
// can race on the check-then-act gap; the unique (blog_id, user_id) index
// makes the losing insert fail.
func (u *blogUsecase) ToggleLike(ctx context.Context, blogID, userID uuid.UUID) (*dto.LikeToggleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	blog, err := u.blogRepo.FindByID(tx, blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	liked, err := u.blogRepo.HasLiked(tx, blogID, userID)
	if err != nil {
		u.log.Warnf("Failed to read like state: %+v", err)
		return nil, err
	}

	if liked {
		if err := u.blogRepo.DeleteLike(tx, blogID, userID); err != nil {
			u.log.Warnf("Failed to delete like: %+v", err)
			return nil, err
		}
	} else {
		if err := u.blogRepo.InsertLike(tx, blogID, userID); err != nil {
			u.log.Warnf("Failed to insert like: %+v", err)
			return nil, err
		}
	}

	count, err := u.blogRepo.CountLikes(tx, blogID)
	if err != nil {
		u.log.Warnf("Failed to count likes: %+v", err)
		return nil, err
	}
	if err := u.blogRepo.UpdateLikesCount(tx, blogID, count); err != nil {
		u.log.Warnf("Failed to update likes count: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.LikeToggleResponse{
		Liked:      !liked,
		LikesCount: count,
	}, nil
}

func (u *blogUsecase) AddComment(ctx context.Context, blogID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	db := u.db.WithContext(ctx)

	blog, err := u.blogRepo.FindByID(db, blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	comment := &entity.BlogComment{
		BlogID:  blogID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := u.blogRepo.CreateComment(db, comment); err != nil {
		u.log.Warnf("Failed to create comment: %+v", err)
		return nil, err
	}

	return converter.CommentToResponse(comment), nil
}

func (u *blogUsecase) GetComments(ctx context.Context, blogID uuid.UUID) (*dto.CommentListResponse, error) {
	db := u.db.WithContext(ctx)

	blog, err := u.blogRepo.FindByID(db, blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	comments, err := u.blogRepo.FindComments(db, blogID)
	if err != nil {
		u.log.Warnf("Failed to find comments: %+v", err)
		return nil, err
	}

	responses := converter.CommentsToResponses(comments)
	return &dto.CommentListResponse{
		Comments: responses,
		Total:    len(responses),
	}, nil
}

func (u *blogUsecase) AddShare(ctx context.Context, blogID, userID uuid.UUID, req *dto.CreateShareRequest) (*dto.ShareResponse, error) {
	db := u.db.WithContext(ctx)

	blog, err := u.blogRepo.FindByID(db, blogID)
	if err != nil {
		u.log.Warnf("Failed to find blog: %+v", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	share := &entity.BlogShare{
		BlogID:   blogID,
		UserID:   userID,
		Platform: entity.SharePlatform(req.Platform),
	}
	if err := u.blogRepo.CreateShare(db, share); err != nil {
		u.log.Warnf("Failed to create share: %+v", err)
		return nil, err
	}

	return converter.ShareToResponse(share), nil
}

func (u *blogUsecase) uploadImages(ctx context.Context, files []*multipart.FileHeader) ([]*media.Upload, error) {
	uploads := make([]*media.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			u.destroyUploads(ctx, uploads)
			return nil, err
		}
		up, err := u.mediaStore.Upload(ctx, f)
		f.Close()
		if err != nil {
			u.log.Warnf("Failed to upload image %s: %+v", fh.Filename, err)
			u.destroyUploads(ctx, uploads)
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func (u *blogUsecase) destroyUploads(ctx context.Context, uploads []*media.Upload) {
	for _, up := range uploads {
		u.destroyQuietly(ctx, up.PublicID)
	}
}

func (u *blogUsecase) destroyQuietly(ctx context.Context, publicID string) {
	result, err := u.mediaStore.Destroy(ctx, publicID)
	if err != nil {
		u.log.Warnf("Failed to destroy media %s: %+v", publicID, err)
		return
	}
	if result != "ok" {
		u.log.Warnf("Media destroy for %s returned %q", publicID, result)
	}
}

func parsePublishedAt(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, ErrInvalidPublished
	}
	return &t, nil
}

func metaString(meta entity.JSON, key string) string {
	v, _ := meta[key].(string)
	return v
}

func seoMetadata(title, keywords string) entity.JSON {
	if title == "" && keywords == "" {
		return nil
	}
	meta := entity.JSON{}
	if title != "" {
		meta["title"] = title
	}
	if keywords != "" {
		meta["keywords"] = keywords
	}
	return meta
}
