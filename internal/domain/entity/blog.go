package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is an article authored by a platform user.
//
// LikesCount is a cached denormalization of COUNT(*) over blog_likes; it is
// recomputed and rewritten on every like toggle, never trusted on its own.
type Blog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	SEOMetadata JSON       `gorm:"type:jsonb" json:"seo_metadata,omitempty"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	LikesCount  int        `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Author   User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Images   []BlogImage   `gorm:"foreignKey:BlogID" json:"images,omitempty"`
	Comments []BlogComment `gorm:"foreignKey:BlogID" json:"comments,omitempty"`
	Likes    []BlogLike    `gorm:"foreignKey:BlogID" json:"likes,omitempty"`
	Shares   []BlogShare   `gorm:"foreignKey:BlogID" json:"shares,omitempty"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogImage positions form a dense 1..N sequence assigned at insertion time.
// No gap-filling guarantee on deletion.
type BlogImage struct {
	ID       int       `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID   uuid.UUID `gorm:"type:uuid;not null;index" json:"blog_id"`
	URL      string    `gorm:"type:text;not null" json:"url"`
	PublicID string    `gorm:"type:varchar(255);not null" json:"public_id"`
	Position int       `gorm:"not null" json:"position"`
}

func (BlogImage) TableName() string {
	return "blog_images"
}

// BlogComment is append-only
type BlogComment struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID    uuid.UUID `gorm:"type:uuid;not null;index" json:"blog_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BlogComment) TableName() string {
	return "blog_comments"
}

// BlogLike rows are unique per (blog, user)
type BlogLike struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blog_user_like" json:"blog_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blog_user_like" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlogLike) TableName() string {
	return "blog_likes"
}

// SharePlatform enumerates where a blog was shared to
type SharePlatform string

const (
	SharePlatformWhatsApp SharePlatform = "whatsapp"
	SharePlatformFacebook SharePlatform = "facebook"
	SharePlatformTwitter  SharePlatform = "twitter"
	SharePlatformLinkedIn SharePlatform = "linkedin"
	SharePlatformCopyLink SharePlatform = "copy_link"
)

// BlogShare is append-only, platform-tagged
type BlogShare struct {
	ID        int           `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"blog_id"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Platform  SharePlatform `gorm:"type:varchar(20);not null" json:"platform"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (BlogShare) TableName() string {
	return "blog_shares"
}
