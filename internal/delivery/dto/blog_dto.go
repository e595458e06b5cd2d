package dto

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Slug        string `json:"slug" validate:"required,min=3,max=255"`
	Content     string `json:"content" validate:"required"`
	SEOTitle    string `json:"seo_title" validate:"omitempty,max=255"`
	SEOKeywords string `json:"seo_keywords" validate:"omitempty"`
	PublishedAt string `json:"published_at" validate:"omitempty"`

	// Images come from the multipart form, position-ordered as received
	Images []*multipart.FileHeader `json:"-" validate:"-"`
}

// UpdateBlogRequest is an explicit partial update: only non-nil fields
// override the stored row.
type UpdateBlogRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,min=3,max=255"`
	Content     *string `json:"content" validate:"omitempty"`
	SEOTitle    *string `json:"seo_title" validate:"omitempty,max=255"`
	SEOKeywords *string `json:"seo_keywords" validate:"omitempty"`
	PublishedAt *string `json:"published_at" validate:"omitempty"`

	// When present, the new set replaces all existing images
	Images []*multipart.FileHeader `json:"-" validate:"-"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type CreateShareRequest struct {
	Platform string `json:"platform" validate:"required,oneof=whatsapp facebook twitter linkedin copy_link"`
}

// Response DTOs

type BlogImageResponse struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type BlogResponse struct {
	ID          uuid.UUID              `json:"id"`
	AuthorID    uuid.UUID              `json:"author_id"`
	Title       string                 `json:"title"`
	Slug        string                 `json:"slug"`
	Content     string                 `json:"content"`
	SEOMetadata map[string]interface{} `json:"seo_metadata,omitempty"`
	PublishedAt *time.Time             `json:"published_at,omitempty"`
	LikesCount  int                    `json:"likes_count"`
	Images      []BlogImageResponse    `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}

type LikeToggleResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

type CommentResponse struct {
	ID        int       `json:"id"`
	BlogID    uuid.UUID `json:"blog_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}

type ShareResponse struct {
	ID        int       `json:"id"`
	BlogID    uuid.UUID `json:"blog_id"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// MediaCleanupFailure reports one best-effort media deletion that did not
// succeed. The database deletion is already committed when these are
// produced.
type MediaCleanupFailure struct {
	PublicID string `json:"public_id"`
	Reason   string `json:"reason"`
}

type DeleteBlogResponse struct {
	MediaCleanupFailures []MediaCleanupFailure `json:"media_cleanup_failures,omitempty"`
}
