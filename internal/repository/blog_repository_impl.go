package repository

import (
	"errors"

	"carelink-backend/internal/domain/entity"
	domainRepo "carelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blogRepository struct{}

func NewBlogRepository() domainRepo.BlogRepository {
	return &blogRepository{}
}

func (r *blogRepository) Create(db *gorm.DB, blog *entity.Blog) error {
	return db.Create(blog).Error
}

func (r *blogRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Blog, error) {
	var blog entity.Blog
	err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("blog_images.position ASC")
	}).Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindBySlug(db *gorm.DB, slug string) (*entity.Blog, error) {
	var blog entity.Blog
	err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("blog_images.position ASC")
	}).Preload("Author").Where("slug = ?", slug).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindAll(db *gorm.DB) ([]entity.Blog, error) {
	var blogs []entity.Blog
	err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("blog_images.position ASC")
	}).Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Update(db *gorm.DB, blog *entity.Blog) error {
	return db.Save(blog).Error
}

func (r *blogRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Blog{}).Error
}

func (r *blogRepository) CreateImages(db *gorm.DB, images []entity.BlogImage) error {
	if len(images) == 0 {
		return nil
	}
	return db.Create(&images).Error
}

func (r *blogRepository) FindImages(db *gorm.DB, blogID uuid.UUID) ([]entity.BlogImage, error) {
	var images []entity.BlogImage
	err := db.Where("blog_id = ?", blogID).Order("position ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *blogRepository) DeleteImages(db *gorm.DB, blogID uuid.UUID) error {
	return db.Where("blog_id = ?", blogID).Delete(&entity.BlogImage{}).Error
}

func (r *blogRepository) DeleteComments(db *gorm.DB, blogID uuid.UUID) error {
	return db.Where("blog_id = ?", blogID).Delete(&entity.BlogComment{}).Error
}

func (r *blogRepository) DeleteLikes(db *gorm.DB, blogID uuid.UUID) error {
	return db.Where("blog_id = ?", blogID).Delete(&entity.BlogLike{}).Error
}

func (r *blogRepository) DeleteShares(db *gorm.DB, blogID uuid.UUID) error {
	return db.Where("blog_id = ?", blogID).Delete(&entity.BlogShare{}).Error
}

func (r *blogRepository) HasLiked(db *gorm.DB, blogID, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM blog_likes WHERE blog_id = ? AND user_id = ?",
		blogID, userID,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blogRepository) InsertLike(db *gorm.DB, blogID, userID uuid.UUID) error {
	return db.Exec(
		"INSERT INTO blog_likes (blog_id, user_id, created_at) VALUES (?, ?, NOW())",
		blogID, userID,
	).Error
}

func (r *blogRepository) DeleteLike(db *gorm.DB, blogID, userID uuid.UUID) error {
	return db.Exec(
		"DELETE FROM blog_likes WHERE blog_id = ? AND user_id = ?",
		blogID, userID,
	).Error
}

func (r *blogRepository) CountLikes(db *gorm.DB, blogID uuid.UUID) (int, error) {
	var count int
	err := db.Raw(
		"SELECT COUNT(*) FROM blog_likes WHERE blog_id = ?",
		blogID,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *blogRepository) UpdateLikesCount(db *gorm.DB, blogID uuid.UUID, count int) error {
	return db.Exec(
		"UPDATE blogs SET likes_count = ? WHERE id = ?",
		count, blogID,
	).Error
}

func (r *blogRepository) CreateComment(db *gorm.DB, comment *entity.BlogComment) error {
	return db.Create(comment).Error
}

func (r *blogRepository) FindComments(db *gorm.DB, blogID uuid.UUID) ([]entity.BlogComment, error) {
	var comments []entity.BlogComment
	err := db.Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *blogRepository) CreateShare(db *gorm.DB, share *entity.BlogShare) error {
	return db.Create(share).Error
}
