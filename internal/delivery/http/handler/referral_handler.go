package handler

import (
	"encoding/json"
	"net/http"

	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/delivery/http/middleware"
	"carelink-backend/internal/usecase"
	"carelink-backend/pkg/response"
	"carelink-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type ReferralHandler struct {
	referralUsecase usecase.ReferralUsecase
	validator       *validator.CustomValidator
}

func NewReferralHandler(referralUsecase usecase.ReferralUsecase, validator *validator.CustomValidator) *ReferralHandler {
	return &ReferralHandler{
		referralUsecase: referralUsecase,
		validator:       validator,
	}
}

func (h *ReferralHandler) CreateReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referrerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	referral, err := h.referralUsecase.CreateReferral(r.Context(), referrerID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create referral")
		return
	}

	response.Success(w, http.StatusCreated, "Referral created successfully", referral)
}

func (h *ReferralHandler) AcceptReferral(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	refereeID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	referral, err := h.referralUsecase.AcceptReferral(r.Context(), vars["code"], refereeID)
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		case usecase.ErrReferralNotPending:
			response.Conflict(w, "Referral is not pending")
		case usecase.ErrSelfReferral:
			response.Conflict(w, "You cannot accept your own referral")
		default:
			response.InternalServerError(w, "Failed to accept referral")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referral accepted successfully", referral)
}

func (h *ReferralHandler) CompleteReferral(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	referral, err := h.referralUsecase.CompleteReferral(r.Context(), vars["code"])
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		case usecase.ErrReferralNotAccepted:
			response.Conflict(w, "Referral is not accepted")
		default:
			response.InternalServerError(w, "Failed to complete referral")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referral completed successfully", referral)
}

func (h *ReferralHandler) GetMyReferrals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	referrals, err := h.referralUsecase.GetMyReferrals(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get referrals")
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved successfully", referrals)
}

func (h *ReferralHandler) GetMyPartnerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	profile, err := h.referralUsecase.GetPartnerProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrPartnerNotFound:
			response.NotFound(w, "Channel partner profile not found")
		default:
			response.InternalServerError(w, "Failed to get partner profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Partner profile retrieved successfully", profile)
}
