package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/repository"
	"carelink-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferralUsecase(t *testing.T) (ReferralUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	log := logrus.New()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	return NewReferralUsecase(db, log, repository.NewReferralRepository(), repository.NewChannelPartnerRepository(), auditService), mock
}

func expectReferralLookup(mock sqlmock.Sqlmock, code string, referrerID uuid.UUID, status entity.ReferralStatus) uuid.UUID {
	referralID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "referrals" WHERE code = \$1`).
		WithArgs(code, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "referrer_id", "code", "status", "commission", "created_at"}).
			AddRow(referralID.String(), referrerID.String(), code, string(status), 100.0, time.Now()))
	return referralID
}

func TestAcceptReferralNotFound(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "referrals" WHERE code = \$1`).
		WithArgs("NOPE", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := uc.AcceptReferral(context.Background(), "NOPE", uuid.New())
	assert.ErrorIs(t, err, ErrReferralNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReferralRejectsNonPending(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	mock.ExpectBegin()
	expectReferralLookup(mock, "ABCDEF1234", uuid.New(), entity.ReferralStatusAccepted)
	mock.ExpectRollback()

	_, err := uc.AcceptReferral(context.Background(), "ABCDEF1234", uuid.New())
	assert.ErrorIs(t, err, ErrReferralNotPending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReferralRejectsSelfReferral(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	referrerID := uuid.New()

	mock.ExpectBegin()
	expectReferralLookup(mock, "ABCDEF1234", referrerID, entity.ReferralStatusPending)
	mock.ExpectRollback()

	_, err := uc.AcceptReferral(context.Background(), "ABCDEF1234", referrerID)
	assert.ErrorIs(t, err, ErrSelfReferral)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptReferralMovesToAccepted(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	referrerID := uuid.New()
	refereeID := uuid.New()

	mock.ExpectBegin()
	expectReferralLookup(mock, "ABCDEF1234", referrerID, entity.ReferralStatusPending)
	mock.ExpectExec(`UPDATE "referrals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := uc.AcceptReferral(context.Background(), "ABCDEF1234", refereeID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReferralStatusAccepted), resp.Status)
	require.NotNil(t, resp.RefereeID)
	assert.Equal(t, refereeID, *resp.RefereeID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReferralRejectsNonAccepted(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	mock.ExpectBegin()
	expectReferralLookup(mock, "ABCDEF1234", uuid.New(), entity.ReferralStatusPending)
	mock.ExpectRollback()

	_, err := uc.CompleteReferral(context.Background(), "ABCDEF1234")
	assert.ErrorIs(t, err, ErrReferralNotAccepted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReferralCreditsCommission(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	referrerID := uuid.New()

	mock.ExpectBegin()
	expectReferralLookup(mock, "ABCDEF1234", referrerID, entity.ReferralStatusAccepted)
	mock.ExpectExec(`UPDATE "referrals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "channel_partner_profiles" WHERE user_id = \$1`).
		WithArgs(referrerID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "total_referrals", "completed_referrals", "total_commission"}).
			AddRow(referrerID.String(), 3, 1, 250.0))
	mock.ExpectExec(`UPDATE "channel_partner_profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	resp, err := uc.CompleteReferral(context.Background(), "ABCDEF1234")
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReferralStatusCompleted), resp.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPartnerProfileNotFound(t *testing.T) {
	uc, mock := newReferralUsecase(t)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "channel_partner_profiles" WHERE user_id = \$1`).
		WithArgs(userID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := uc.GetPartnerProfile(context.Background(), userID)
	assert.ErrorIs(t, err, ErrPartnerNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateReferralCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := generateReferralCode()
		assert.Len(t, code, 10)
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = true
	}
	// uuid-derived codes should essentially never collide in 50 draws
	assert.Greater(t, len(seen), 45)
}
