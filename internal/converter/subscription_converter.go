package converter

import (
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/domain/entity"
)

// PlanToResponse converts a SubscriptionPlan entity to its DTO
func PlanToResponse(plan *entity.SubscriptionPlan) *dto.SubscriptionPlanResponse {
	if plan == nil {
		return nil
	}

	benefits := make([]dto.PlanBenefitResponse, len(plan.Benefits))
	for i, b := range plan.Benefits {
		benefits[i] = dto.PlanBenefitResponse{
			ID:          b.ID,
			PlanID:      b.PlanID,
			Title:       b.Title,
			Description: b.Description,
		}
	}

	return &dto.SubscriptionPlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Description:  plan.Description,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		IsActive:     plan.IsActive,
		Benefits:     benefits,
	}
}

// PlansToResponses converts a slice of SubscriptionPlan entities
func PlansToResponses(plans []entity.SubscriptionPlan) []dto.SubscriptionPlanResponse {
	responses := make([]dto.SubscriptionPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *PlanToResponse(&plans[i])
	}
	return responses
}

// BenefitToResponse converts a PlanBenefit entity to its DTO
func BenefitToResponse(benefit *entity.PlanBenefit) *dto.PlanBenefitResponse {
	if benefit == nil {
		return nil
	}

	return &dto.PlanBenefitResponse{
		ID:          benefit.ID,
		PlanID:      benefit.PlanID,
		Title:       benefit.Title,
		Description: benefit.Description,
	}
}
