package repository

import (
	"errors"

	"carelink-backend/internal/domain/entity"
	domainRepo "carelink-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type subscriptionPlanRepository struct{}

func NewSubscriptionPlanRepository() domainRepo.SubscriptionPlanRepository {
	return &subscriptionPlanRepository{}
}

func (r *subscriptionPlanRepository) FindAll(db *gorm.DB) ([]entity.SubscriptionPlan, error) {
	var plans []entity.SubscriptionPlan
	err := db.Preload("Benefits").Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *subscriptionPlanRepository) FindByID(db *gorm.DB, id int) (*entity.SubscriptionPlan, error) {
	var plan entity.SubscriptionPlan
	err := db.Preload("Benefits").Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *subscriptionPlanRepository) Update(db *gorm.DB, plan *entity.SubscriptionPlan) error {
	return db.Omit("Benefits").Save(plan).Error
}

func (r *subscriptionPlanRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.SubscriptionPlan{}).Error
}

func (r *subscriptionPlanRepository) DeleteBenefitsByPlanID(db *gorm.DB, planID int) error {
	return db.Where("plan_id = ?", planID).Delete(&entity.PlanBenefit{}).Error
}

func (r *subscriptionPlanRepository) FindBenefitByID(db *gorm.DB, id int) (*entity.PlanBenefit, error) {
	var benefit entity.PlanBenefit
	err := db.Where("id = ?", id).First(&benefit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &benefit, nil
}

func (r *subscriptionPlanRepository) UpdateBenefit(db *gorm.DB, benefit *entity.PlanBenefit) error {
	return db.Save(benefit).Error
}

func (r *subscriptionPlanRepository) DeleteBenefit(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.PlanBenefit{}).Error
}
