package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/response"
	"carelink-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type SubscriptionPlanHandler struct {
	planUsecase usecase.SubscriptionPlanUsecase
	validator   *validator.CustomValidator
}

func NewSubscriptionPlanHandler(planUsecase usecase.SubscriptionPlanUsecase, validator *validator.CustomValidator) *SubscriptionPlanHandler {
	return &SubscriptionPlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

func (h *SubscriptionPlanHandler) GetAllPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planUsecase.GetAllPlans(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get subscription plans")
		return
	}

	response.Success(w, http.StatusOK, "Subscription plans retrieved successfully", plans)
}

func (h *SubscriptionPlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	var req dto.UpdateSubscriptionPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.UpdatePlan(r.Context(), planID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Subscription plan not found")
		case usecase.ErrNoChanges:
			response.Error(w, http.StatusBadRequest, "No changes detected", nil)
		default:
			response.InternalServerError(w, "Failed to update subscription plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Subscription plan updated successfully", plan)
}

func (h *SubscriptionPlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid plan ID", nil)
		return
	}

	if err := h.planUsecase.DeletePlan(r.Context(), planID); err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Subscription plan not found")
		default:
			response.InternalServerError(w, "Failed to delete subscription plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Subscription plan deleted successfully", nil)
}

func (h *SubscriptionPlanHandler) UpdateBenefit(w http.ResponseWriter, r *http.Request) {
	benefitID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid benefit ID", nil)
		return
	}

	var req dto.UpdatePlanBenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	benefit, err := h.planUsecase.UpdateBenefit(r.Context(), benefitID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBenefitNotFound:
			response.NotFound(w, "Plan benefit not found")
		case usecase.ErrNoChanges:
			response.Error(w, http.StatusBadRequest, "No changes detected", nil)
		default:
			response.InternalServerError(w, "Failed to update plan benefit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Plan benefit updated successfully", benefit)
}

func (h *SubscriptionPlanHandler) DeleteBenefit(w http.ResponseWriter, r *http.Request) {
	benefitID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid benefit ID", nil)
		return
	}

	if err := h.planUsecase.DeleteBenefit(r.Context(), benefitID); err != nil {
		switch err {
		case usecase.ErrBenefitNotFound:
			response.NotFound(w, "Plan benefit not found")
		default:
			response.InternalServerError(w, "Failed to delete plan benefit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Plan benefit deleted successfully", nil)
}

func pathID(r *http.Request, key string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[key])
}
