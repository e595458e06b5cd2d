package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindVerifiedDetailRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorDirectoryRepository()

	id := uuid.New()
	mock.ExpectQuery(`WHERE d\.is_verified = TRUE AND u\.is_active = TRUE\s+ORDER BY u\.full_name ASC, dp\.id ASC, ds\.id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"doctor_id", "full_name", "is_verified", "practice_id"}).
			AddRow(id.String(), "Dr. Asha Rao", int64(1), nil))

	rows, err := repo.FindVerifiedDetailRows(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Dr. Asha Rao", rows[0].String("full_name"))
	assert.True(t, rows[0].Bool01("is_verified"))
	assert.True(t, rows[0].IsNull("practice_id"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorChildRowsEmptyIDsShortCircuit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorDirectoryRepository()

	rows, err := repo.FindQualificationRows(db, nil)
	require.NoError(t, err)
	assert.Nil(t, rows)

	rows, err = repo.FindDocumentRows(db, nil)
	require.NoError(t, err)
	assert.Nil(t, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindQualificationRowsScopedToIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorDirectoryRepository()

	id := uuid.New()
	mock.ExpectQuery(`FROM doctor_qualifications\s+WHERE doctor_id IN \(\$1\)`).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"doctor_id", "degree", "institution", "year"}).
			AddRow(id.String(), "MBBS", "AIIMS", int64(2004)))

	rows, err := repo.FindQualificationRows(db, []uuid.UUID{id})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "MBBS", rows[0].String("degree"))
	assert.Equal(t, 2004, rows[0].Int("year"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
