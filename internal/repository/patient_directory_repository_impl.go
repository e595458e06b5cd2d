package repository

import (
	"strings"

	"carelink-backend/internal/aggregate"
	"carelink-backend/internal/domain/entity"
	domainRepo "carelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const patientListQuery = `
SELECT
	pp.user_id    AS patient_id,
	u.full_name,
	u.email,
	pp.phone_number,
	pp.gender,
	pp.blood_group,
	pp.address,
	pp.date_of_birth,
	u.is_active,
	pp.created_at
FROM patient_profiles pp
JOIN users u ON u.id = pp.user_id`

const patientDocumentQuery = `
SELECT id, patient_id, document_type, url
FROM patient_documents
WHERE patient_id IN ?
ORDER BY id ASC`

const patientConditionQuery = `
SELECT id, patient_id, name, diagnosed_at, notes
FROM patient_conditions
WHERE patient_id IN ?
ORDER BY id ASC`

const patientAllergyQuery = `
SELECT id, patient_id, allergen, severity
FROM patient_allergies
WHERE patient_id IN ?
ORDER BY id ASC`

type patientDirectoryRepository struct{}

func NewPatientDirectoryRepository() domainRepo.PatientDirectoryRepository {
	return &patientDirectoryRepository{}
}

// FindPatientRows lists patients, newest first. full_name and email are
// LIKE partial matches; gender is exact.
func (r *patientDirectoryRepository) FindPatientRows(db *gorm.DB, filter entity.PatientFilter) ([]aggregate.Row, error) {
	var conditions []string
	var args []interface{}

	if filter.FullName != "" {
		conditions = append(conditions, "u.full_name LIKE ?")
		args = append(args, "%"+filter.FullName+"%")
	}
	if filter.Email != "" {
		conditions = append(conditions, "u.email LIKE ?")
		args = append(args, "%"+filter.Email+"%")
	}
	if filter.Gender != "" {
		conditions = append(conditions, "pp.gender = ?")
		args = append(args, filter.Gender)
	}

	query := patientListQuery
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\nORDER BY pp.created_at DESC"

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	return aggregate.ScanRows(rows)
}

func (r *patientDirectoryRepository) FindDocumentRows(db *gorm.DB, patientIDs []uuid.UUID) ([]aggregate.Row, error) {
	return r.childRows(db, patientDocumentQuery, patientIDs)
}

func (r *patientDirectoryRepository) FindConditionRows(db *gorm.DB, patientIDs []uuid.UUID) ([]aggregate.Row, error) {
	return r.childRows(db, patientConditionQuery, patientIDs)
}

func (r *patientDirectoryRepository) FindAllergyRows(db *gorm.DB, patientIDs []uuid.UUID) ([]aggregate.Row, error) {
	return r.childRows(db, patientAllergyQuery, patientIDs)
}

func (r *patientDirectoryRepository) childRows(db *gorm.DB, query string, patientIDs []uuid.UUID) ([]aggregate.Row, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}
	rows, err := db.Raw(query, patientIDs).Rows()
	if err != nil {
		return nil, err
	}
	return aggregate.ScanRows(rows)
}
