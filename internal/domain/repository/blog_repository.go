package repository

import (
	"carelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(db *gorm.DB, blog *entity.Blog) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Blog, error)
	FindBySlug(db *gorm.DB, slug string) (*entity.Blog, error)
	FindAll(db *gorm.DB) ([]entity.Blog, error)
	Update(db *gorm.DB, blog *entity.Blog) error
	Delete(db *gorm.DB, id uuid.UUID) error

	CreateImages(db *gorm.DB, images []entity.BlogImage) error
	FindImages(db *gorm.DB, blogID uuid.UUID) ([]entity.BlogImage, error)
	DeleteImages(db *gorm.DB, blogID uuid.UUID) error
	DeleteComments(db *gorm.DB, blogID uuid.UUID) error
	DeleteLikes(db *gorm.DB, blogID uuid.UUID) error
	DeleteShares(db *gorm.DB, blogID uuid.UUID) error

	// Like toggle primitives; all direct parameterized SQL so the counter
	// recompute reads the live COUNT(*).
	HasLiked(db *gorm.DB, blogID, userID uuid.UUID) (bool, error)
	InsertLike(db *gorm.DB, blogID, userID uuid.UUID) error
	DeleteLike(db *gorm.DB, blogID, userID uuid.UUID) error
	CountLikes(db *gorm.DB, blogID uuid.UUID) (int, error)
	UpdateLikesCount(db *gorm.DB, blogID uuid.UUID, count int) error

	CreateComment(db *gorm.DB, comment *entity.BlogComment) error
	FindComments(db *gorm.DB, blogID uuid.UUID) ([]entity.BlogComment, error)
	CreateShare(db *gorm.DB, share *entity.BlogShare) error
}
