package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReferralRequest struct {
	Commission float64 `json:"commission" validate:"omitempty,gte=0"`
}

type ReferralResponse struct {
	ID         uuid.UUID  `json:"id"`
	ReferrerID uuid.UUID  `json:"referrer_id"`
	RefereeID  *uuid.UUID `json:"referee_id,omitempty"`
	Code       string     `json:"code"`
	Status     string     `json:"status"`
	Commission float64    `json:"commission"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReferralListResponse struct {
	Referrals []ReferralResponse `json:"referrals"`
	Total     int                `json:"total"`
}

type ChannelPartnerResponse struct {
	UserID             uuid.UUID `json:"user_id"`
	TotalReferrals     int       `json:"total_referrals"`
	CompletedReferrals int       `json:"completed_referrals"`
	TotalCommission    float64   `json:"total_commission"`
}
