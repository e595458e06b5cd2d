package converter

import (
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/domain/entity"
)

// ReferralToResponse converts a Referral entity to ReferralResponse DTO
func ReferralToResponse(referral *entity.Referral) *dto.ReferralResponse {
	if referral == nil {
		return nil
	}

	return &dto.ReferralResponse{
		ID:         referral.ID,
		ReferrerID: referral.ReferrerID,
		RefereeID:  referral.RefereeID,
		Code:       referral.Code,
		Status:     string(referral.Status),
		Commission: referral.Commission,
		CreatedAt:  referral.CreatedAt,
	}
}

// ReferralsToResponses converts a slice of Referral entities
func ReferralsToResponses(referrals []entity.Referral) []dto.ReferralResponse {
	responses := make([]dto.ReferralResponse, len(referrals))
	for i := range referrals {
		responses[i] = *ReferralToResponse(&referrals[i])
	}
	return responses
}

// ChannelPartnerToResponse converts a ChannelPartnerProfile entity
func ChannelPartnerToResponse(profile *entity.ChannelPartnerProfile) *dto.ChannelPartnerResponse {
	if profile == nil {
		return nil
	}

	return &dto.ChannelPartnerResponse{
		UserID:             profile.UserID,
		TotalReferrals:     profile.TotalReferrals,
		CompletedReferrals: profile.CompletedReferrals,
		TotalCommission:    profile.TotalCommission,
	}
}
