package dto

// UpdateSubscriptionPlanRequest is a partial update: only non-nil fields
// are compared against and merged into the stored row.
type UpdateSubscriptionPlanRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description  *string  `json:"description" validate:"omitempty"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	DurationDays *int     `json:"duration_days" validate:"omitempty,gte=1"`
	IsActive     *bool    `json:"is_active" validate:"omitempty"`
}

type UpdatePlanBenefitRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty"`
}

type PlanBenefitResponse struct {
	ID          int    `json:"id"`
	PlanID      int    `json:"plan_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SubscriptionPlanResponse struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Price        float64               `json:"price"`
	DurationDays int                   `json:"duration_days"`
	IsActive     bool                  `json:"is_active"`
	Benefits     []PlanBenefitResponse `json:"benefits"`
}

type SubscriptionPlanListResponse struct {
	Plans []SubscriptionPlanResponse `json:"plans"`
	Total int                        `json:"total"`
}
