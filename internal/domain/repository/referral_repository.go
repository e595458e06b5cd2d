package repository

import (
	"carelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReferralRepository interface {
	Create(db *gorm.DB, referral *entity.Referral) error
	FindByCode(db *gorm.DB, code string) (*entity.Referral, error)
	Update(db *gorm.DB, referral *entity.Referral) error
	FindByReferrerID(db *gorm.DB, referrerID uuid.UUID) ([]entity.Referral, error)
}

type ChannelPartnerRepository interface {
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ChannelPartnerProfile, error)
	Save(db *gorm.DB, profile *entity.ChannelPartnerProfile) error
}
