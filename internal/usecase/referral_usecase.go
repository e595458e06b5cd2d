package usecase

import (
	"context"
	"errors"
	"strings"

	"carelink-backend/internal/converter"
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/delivery/http/middleware"
	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/domain/repository"
	"carelink-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReferralNotFound    = errors.New("referral not found")
	ErrReferralNotPending  = errors.New("referral is not pending")
	ErrReferralNotAccepted = errors.New("referral is not accepted")
	ErrSelfReferral        = errors.New("cannot accept own referral")
	ErrPartnerNotFound     = errors.New("channel partner profile not found")
)

type ReferralUsecase interface {
	CreateReferral(ctx context.Context, referrerID uuid.UUID, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error)
	AcceptReferral(ctx context.Context, code string, refereeID uuid.UUID) (*dto.ReferralResponse, error)
	CompleteReferral(ctx context.Context, code string) (*dto.ReferralResponse, error)
	GetMyReferrals(ctx context.Context, userID uuid.UUID) (*dto.ReferralListResponse, error)
	GetPartnerProfile(ctx context.Context, userID uuid.UUID) (*dto.ChannelPartnerResponse, error)
}

type referralUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	referralRepo repository.ReferralRepository
	partnerRepo  repository.ChannelPartnerRepository
	auditService service.AuditService
}

func NewReferralUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	partnerRepo repository.ChannelPartnerRepository,
	auditService service.AuditService,
) ReferralUsecase {
	return &referralUsecase{
		db:           db,
		log:          log,
		referralRepo: referralRepo,
		partnerRepo:  partnerRepo,
		auditService: auditService,
	}
}

// CreateReferral mints a pending referral with a unique short code and
// bumps the referrer's total. The partner profile row is created on first
// referral.
func (u *referralUsecase) CreateReferral(ctx context.Context, referrerID uuid.UUID, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral := &entity.Referral{
		ReferrerID: referrerID,
		Code:       generateReferralCode(),
		Status:     entity.ReferralStatusPending,
		Commission: req.Commission,
	}
	if err := u.referralRepo.Create(tx, referral); err != nil {
		u.log.Warnf("Failed to create referral: %+v", err)
		return nil, err
	}

	profile, err := u.partnerRepo.FindByUserID(tx, referrerID)
	if err != nil {
		u.log.Warnf("Failed to find partner profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		profile = &entity.ChannelPartnerProfile{UserID: referrerID}
	}
	profile.TotalReferrals++
	if err := u.partnerRepo.Save(tx, profile); err != nil {
		u.log.Warnf("Failed to save partner profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReferralToResponse(referral), nil
}

// AcceptReferral moves pending -> accepted and records the referee
func (u *referralUsecase) AcceptReferral(ctx context.Context, code string, refereeID uuid.UUID) (*dto.ReferralResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral, err := u.referralRepo.FindByCode(tx, code)
	if err != nil {
		u.log.Warnf("Failed to find referral: %+v", err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}
	if !referral.IsPending() {
		return nil, ErrReferralNotPending
	}
	if referral.ReferrerID == refereeID {
		return nil, ErrSelfReferral
	}

	referral.RefereeID = &refereeID
	referral.Status = entity.ReferralStatusAccepted
	if err := u.referralRepo.Update(tx, referral); err != nil {
		u.log.Warnf("Failed to update referral: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReferralToResponse(referral), nil
}

// CompleteReferral moves accepted -> completed and credits the commission
// to the referrer's partner profile in the same transaction
func (u *referralUsecase) CompleteReferral(ctx context.Context, code string) (*dto.ReferralResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral, err := u.referralRepo.FindByCode(tx, code)
	if err != nil {
		u.log.Warnf("Failed to find referral: %+v", err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}
	if !referral.IsAccepted() {
		return nil, ErrReferralNotAccepted
	}

	referral.Status = entity.ReferralStatusCompleted
	if err := u.referralRepo.Update(tx, referral); err != nil {
		u.log.Warnf("Failed to update referral: %+v", err)
		return nil, err
	}

	profile, err := u.partnerRepo.FindByUserID(tx, referral.ReferrerID)
	if err != nil {
		u.log.Warnf("Failed to find partner profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		profile = &entity.ChannelPartnerProfile{
			UserID:         referral.ReferrerID,
			TotalReferrals: 1,
		}
	}
	profile.CompletedReferrals++
	profile.TotalCommission += referral.Commission
	if err := u.partnerRepo.Save(tx, profile); err != nil {
		u.log.Warnf("Failed to save partner profile: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionReferralComplete, "referral", referral.ID.String(), nil, converter.ReferralToResponse(referral)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReferralToResponse(referral), nil
}

func (u *referralUsecase) GetMyReferrals(ctx context.Context, userID uuid.UUID) (*dto.ReferralListResponse, error) {
	referrals, err := u.referralRepo.FindByReferrerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find referrals: %+v", err)
		return nil, err
	}

	responses := converter.ReferralsToResponses(referrals)
	return &dto.ReferralListResponse{
		Referrals: responses,
		Total:     len(responses),
	}, nil
}

func (u *referralUsecase) GetPartnerProfile(ctx context.Context, userID uuid.UUID) (*dto.ChannelPartnerResponse, error) {
	profile, err := u.partnerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find partner profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPartnerNotFound
	}

	return converter.ChannelPartnerToResponse(profile), nil
}

// generateReferralCode derives a short uppercase code from a fresh UUID.
// The unique index on referrals.code backs uniqueness; a collision would
// surface as a duplicate-key error on insert.
func generateReferralCode() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:10])
}
