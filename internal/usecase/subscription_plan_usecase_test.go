package usecase

import (
	"context"
	"testing"

	"carelink-backend/internal/delivery/dto"
	"carelink-backend/internal/repository"
	"carelink-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanUsecase(t *testing.T) (SubscriptionPlanUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	log := logrus.New()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	return NewSubscriptionPlanUsecase(db, log, repository.NewSubscriptionPlanRepository(), auditService), mock
}

func expectPlanLookup(mock sqlmock.Sqlmock, id int, name string, price float64) {
	mock.ExpectQuery(`SELECT \* FROM "subscription_plans" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "duration_days", "is_active"}).
			AddRow(id, name, "", price, 30, true))
	mock.ExpectQuery(`SELECT \* FROM "plan_benefits" WHERE "plan_benefits"\."plan_id" = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "plan_id", "title", "description"}))
}

func TestUpdatePlanNoChangesShortCircuits(t *testing.T) {
	uc, mock := newPlanUsecase(t)

	mock.ExpectBegin()
	expectPlanLookup(mock, 1, "Basic", 499)
	// no UPDATE may be issued
	mock.ExpectRollback()

	name := "Basic"
	price := 499.0
	resp, err := uc.UpdatePlan(context.Background(), 1, &dto.UpdateSubscriptionPlanRequest{
		Name:  &name,
		Price: &price,
	})
	assert.ErrorIs(t, err, ErrNoChanges)
	assert.Nil(t, resp)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePlanEmptyRequestShortCircuits(t *testing.T) {
	uc, mock := newPlanUsecase(t)

	mock.ExpectBegin()
	expectPlanLookup(mock, 1, "Basic", 499)
	mock.ExpectRollback()

	_, err := uc.UpdatePlan(context.Background(), 1, &dto.UpdateSubscriptionPlanRequest{})
	assert.ErrorIs(t, err, ErrNoChanges)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePlanNotFound(t *testing.T) {
	uc, mock := newPlanUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "subscription_plans" WHERE id = \$1`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	name := "Gold"
	_, err := uc.UpdatePlan(context.Background(), 99, &dto.UpdateSubscriptionPlanRequest{Name: &name})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBenefitNoChangesShortCircuits(t *testing.T) {
	uc, mock := newPlanUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plan_benefits" WHERE id = \$1`).
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "plan_id", "title", "description"}).
			AddRow(5, 1, "Free checkups", "Two per year"))
	mock.ExpectRollback()

	title := "Free checkups"
	_, err := uc.UpdateBenefit(context.Background(), 5, &dto.UpdatePlanBenefitRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNoChanges)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBenefitNotFound(t *testing.T) {
	uc, mock := newPlanUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plan_benefits" WHERE id = \$1`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := uc.DeleteBenefit(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBenefitNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllPlans(t *testing.T) {
	uc, mock := newPlanUsecase(t)

	mock.ExpectQuery(`SELECT \* FROM "subscription_plans" ORDER BY price ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "duration_days", "is_active"}).
			AddRow(1, "Basic", 499.0, 30, true).
			AddRow(2, "Gold", 1499.0, 30, true))
	mock.ExpectQuery(`SELECT \* FROM "plan_benefits" WHERE "plan_benefits"\."plan_id" IN \(\$1,\$2\)`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "plan_id", "title"}).
			AddRow(1, 1, "Free checkups"))

	resp, err := uc.GetAllPlans(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Basic", resp.Plans[0].Name)
	require.Len(t, resp.Plans[0].Benefits, 1)
	assert.Empty(t, resp.Plans[1].Benefits)

	assert.NoError(t, mock.ExpectationsWereMet())
}
