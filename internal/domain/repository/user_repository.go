package repository

import (
	"carelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	// SetActive returns the number of affected rows; 0 means the user
	// does not exist.
	SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
}
