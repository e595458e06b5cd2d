package repository

import (
	"errors"

	"carelink-backend/internal/domain/entity"
	domainRepo "carelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type referralRepository struct{}

func NewReferralRepository() domainRepo.ReferralRepository {
	return &referralRepository{}
}

func (r *referralRepository) Create(db *gorm.DB, referral *entity.Referral) error {
	return db.Create(referral).Error
}

func (r *referralRepository) FindByCode(db *gorm.DB, code string) (*entity.Referral, error) {
	var referral entity.Referral
	err := db.Where("code = ?", code).First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepository) Update(db *gorm.DB, referral *entity.Referral) error {
	return db.Save(referral).Error
}

func (r *referralRepository) FindByReferrerID(db *gorm.DB, referrerID uuid.UUID) ([]entity.Referral, error) {
	var referrals []entity.Referral
	err := db.Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

type channelPartnerRepository struct{}

func NewChannelPartnerRepository() domainRepo.ChannelPartnerRepository {
	return &channelPartnerRepository{}
}

func (r *channelPartnerRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ChannelPartnerProfile, error) {
	var profile entity.ChannelPartnerProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *channelPartnerRepository) Save(db *gorm.DB, profile *entity.ChannelPartnerProfile) error {
	return db.Save(profile).Error
}
