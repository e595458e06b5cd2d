package usecase

import (
	"context"
	"errors"
	"strconv"

	"carelink-backend/internal/converter"
	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/delivery/http/middleware"
	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/domain/repository"
	"carelink-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound    = errors.New("subscription plan not found")
	ErrBenefitNotFound = errors.New("plan benefit not found")
	ErrNoChanges       = errors.New("no changes detected")
)

type SubscriptionPlanUsecase interface {
	GetAllPlans(ctx context.Context) (*dto.SubscriptionPlanListResponse, error)
	UpdatePlan(ctx context.Context, planID int, req *dto.UpdateSubscriptionPlanRequest) (*dto.SubscriptionPlanResponse, error)
	DeletePlan(ctx context.Context, planID int) error
	UpdateBenefit(ctx context.Context, benefitID int, req *dto.UpdatePlanBenefitRequest) (*dto.PlanBenefitResponse, error)
	DeleteBenefit(ctx context.Context, benefitID int) error
}

type subscriptionPlanUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	planRepo     repository.SubscriptionPlanRepository
	auditService service.AuditService
}

func NewSubscriptionPlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	planRepo repository.SubscriptionPlanRepository,
	auditService service.AuditService,
) SubscriptionPlanUsecase {
	return &subscriptionPlanUsecase{
		db:           db,
		log:          log,
		planRepo:     planRepo,
		auditService: auditService,
	}
}

func (u *subscriptionPlanUsecase) GetAllPlans(ctx context.Context) (*dto.SubscriptionPlanListResponse, error) {
	plans, err := u.planRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find plans: %+v", err)
		return nil, err
	}

	responses := converter.PlansToResponses(plans)
	return &dto.SubscriptionPlanListResponse{
		Plans: responses,
		Total: len(responses),
	}, nil
}

// UpdatePlan merges only the supplied fields. When every supplied field
// equals the stored value no UPDATE is issued and the caller gets
// ErrNoChanges.
func (u *subscriptionPlanUsecase) UpdatePlan(ctx context.Context, planID int, req *dto.UpdateSubscriptionPlanRequest) (*dto.SubscriptionPlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByID(tx, planID)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	oldValue := converter.PlanToResponse(plan)

	changed := false
	if req.Name != nil && *req.Name != plan.Name {
		plan.Name = *req.Name
		changed = true
	}
	if req.Description != nil && *req.Description != plan.Description {
		plan.Description = *req.Description
		changed = true
	}
	if req.Price != nil && *req.Price != plan.Price {
		plan.Price = *req.Price
		changed = true
	}
	if req.DurationDays != nil && *req.DurationDays != plan.DurationDays {
		plan.DurationDays = *req.DurationDays
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != plan.IsActive {
		plan.IsActive = *req.IsActive
		changed = true
	}

	if !changed {
		return nil, ErrNoChanges
	}

	if err := u.planRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update plan: %+v", err)
		return nil, err
	}

	newValue := converter.PlanToResponse(plan)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionPlanUpdate, "subscription_plan", strconv.Itoa(planID), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeletePlan removes the plan's benefit rows before the plan row itself
func (u *subscriptionPlanUsecase) DeletePlan(ctx context.Context, planID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByID(tx, planID)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return err
	}
	if plan == nil {
		return ErrPlanNotFound
	}
	oldValue := converter.PlanToResponse(plan)

	if err := u.planRepo.DeleteBenefitsByPlanID(tx, planID); err != nil {
		u.log.Warnf("Failed to delete plan benefits: %+v", err)
		return err
	}
	if err := u.planRepo.Delete(tx, planID); err != nil {
		u.log.Warnf("Failed to delete plan: %+v", err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionPlanDelete, "subscription_plan", strconv.Itoa(planID), oldValue, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *subscriptionPlanUsecase) UpdateBenefit(ctx context.Context, benefitID int, req *dto.UpdatePlanBenefitRequest) (*dto.PlanBenefitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	benefit, err := u.planRepo.FindBenefitByID(tx, benefitID)
	if err != nil {
		u.log.Warnf("Failed to find benefit: %+v", err)
		return nil, err
	}
	if benefit == nil {
		return nil, ErrBenefitNotFound
	}

	oldValue := converter.BenefitToResponse(benefit)

	changed := false
	if req.Title != nil && *req.Title != benefit.Title {
		benefit.Title = *req.Title
		changed = true
	}
	if req.Description != nil && *req.Description != benefit.Description {
		benefit.Description = *req.Description
		changed = true
	}

	if !changed {
		return nil, ErrNoChanges
	}

	if err := u.planRepo.UpdateBenefit(tx, benefit); err != nil {
		u.log.Warnf("Failed to update benefit: %+v", err)
		return nil, err
	}

	newValue := converter.BenefitToResponse(benefit)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionBenefitUpdate, "plan_benefit", strconv.Itoa(benefitID), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *subscriptionPlanUsecase) DeleteBenefit(ctx context.Context, benefitID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	benefit, err := u.planRepo.FindBenefitByID(tx, benefitID)
	if err != nil {
		u.log.Warnf("Failed to find benefit: %+v", err)
		return err
	}
	if benefit == nil {
		return ErrBenefitNotFound
	}
	oldValue := converter.BenefitToResponse(benefit)

	if err := u.planRepo.DeleteBenefit(tx, benefitID); err != nil {
		u.log.Warnf("Failed to delete benefit: %+v", err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionBenefitDelete, "plan_benefit", strconv.Itoa(benefitID), oldValue, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
