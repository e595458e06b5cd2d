package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralStatus represents the status of a referral
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusAccepted  ReferralStatus = "accepted"
	ReferralStatusCompleted ReferralStatus = "completed"
)

// Referral links a referrer user to a referee user via a unique code
type Referral struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReferrerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"referrer_id"`
	RefereeID  *uuid.UUID     `gorm:"type:uuid;index" json:"referee_id,omitempty"`
	Code       string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Status     ReferralStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Commission float64        `gorm:"not null;default:0" json:"commission"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Referrer User  `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty"`
	Referee  *User `gorm:"foreignKey:RefereeID" json:"referee,omitempty"`
}

func (Referral) TableName() string {
	return "referrals"
}

// IsPending checks if referral is still awaiting the referee
func (r *Referral) IsPending() bool {
	return r.Status == ReferralStatusPending
}

// IsAccepted checks if the referee has joined through the referral
func (r *Referral) IsAccepted() bool {
	return r.Status == ReferralStatusAccepted
}

// ChannelPartnerProfile aggregates referral counts and commission totals
// for a referring user
type ChannelPartnerProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalReferrals     int       `gorm:"not null;default:0" json:"total_referrals"`
	CompletedReferrals int       `gorm:"not null;default:0" json:"completed_referrals"`
	TotalCommission    float64   `gorm:"not null;default:0" json:"total_commission"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ChannelPartnerProfile) TableName() string {
	return "channel_partner_profiles"
}
