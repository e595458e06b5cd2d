package entity

import "time"

// SubscriptionPlan is a simple mutable record gated by an admin role check
type SubscriptionPlan struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Price        float64   `gorm:"not null" json:"price"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Benefits []PlanBenefit `gorm:"foreignKey:PlanID" json:"benefits,omitempty"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type PlanBenefit struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	PlanID      int    `gorm:"not null;index" json:"plan_id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (PlanBenefit) TableName() string {
	return "plan_benefits"
}
