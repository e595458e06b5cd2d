package usecase

import (
	"context"
	"testing"
	"time"

	"carelink-backend/internal/domain/entity"
	"carelink-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllPatientsStitchesChildRows(t *testing.T) {
	db, mock := newMockDB(t)
	uc := NewPatientDirectoryUsecase(db, logrus.New(), repository.NewPatientDirectoryRepository())

	patientID := uuid.New()
	dob := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM patient_profiles pp\s+JOIN users u ON u\.id = pp\.user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"patient_id", "full_name", "email", "gender", "date_of_birth", "is_active"}).
			AddRow(patientID.String(), "Ravi Kumar", "ravi@example.com", "Male", dob, int64(1)))

	mock.ExpectQuery(`FROM patient_documents\s+WHERE patient_id IN \(\$1\)`).
		WithArgs(patientID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "document_type", "url"}).
			AddRow(int64(1), patientID.String(), "insurance", "https://cdn/ins"))

	mock.ExpectQuery(`FROM patient_conditions\s+WHERE patient_id IN \(\$1\)`).
		WithArgs(patientID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "name", "diagnosed_at", "notes"}).
			AddRow(int64(1), patientID.String(), "Hypertension", time.Date(2022, 11, 3, 0, 0, 0, 0, time.UTC), "stage 1"))

	mock.ExpectQuery(`FROM patient_allergies\s+WHERE patient_id IN \(\$1\)`).
		WithArgs(patientID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "allergen", "severity"}).
			AddRow(int64(1), patientID.String(), "Penicillin", "severe"))

	resp, err := uc.GetAllPatients(context.Background(), entity.PatientFilter{})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	patient := resp.Patients[0]
	assert.Equal(t, patientID, patient.ID)
	assert.True(t, patient.IsActive)
	require.Len(t, patient.Documents, 1)
	require.Len(t, patient.Conditions, 1)
	assert.Equal(t, "2022-11-03", patient.Conditions[0].DiagnosedAt)
	require.Len(t, patient.Allergies, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllPatientsNoMatches(t *testing.T) {
	db, mock := newMockDB(t)
	uc := NewPatientDirectoryUsecase(db, logrus.New(), repository.NewPatientDirectoryRepository())

	mock.ExpectQuery(`WHERE u\.full_name LIKE \$1`).
		WithArgs("%nobody%").
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}))

	// no secondary queries for an empty id set
	resp, err := uc.GetAllPatients(context.Background(), entity.PatientFilter{FullName: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	assert.NoError(t, mock.ExpectationsWereMet())
}
