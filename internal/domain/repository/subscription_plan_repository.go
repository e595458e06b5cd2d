package repository

import (
	"carelink-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SubscriptionPlanRepository interface {
	FindAll(db *gorm.DB) ([]entity.SubscriptionPlan, error)
	FindByID(db *gorm.DB, id int) (*entity.SubscriptionPlan, error)
	Update(db *gorm.DB, plan *entity.SubscriptionPlan) error
	Delete(db *gorm.DB, id int) error
	DeleteBenefitsByPlanID(db *gorm.DB, planID int) error

	FindBenefitByID(db *gorm.DB, id int) (*entity.PlanBenefit, error)
	UpdateBenefit(db *gorm.DB, benefit *entity.PlanBenefit) error
	DeleteBenefit(db *gorm.DB, id int) error
}
