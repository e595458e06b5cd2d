package repository

import (
	"carelink-backend/internal/aggregate"
	"carelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientDirectoryRepository runs the patient listing aggregation queries
type PatientDirectoryRepository interface {
	FindPatientRows(db *gorm.DB, filter entity.PatientFilter) ([]aggregate.Row, error)
	FindDocumentRows(db *gorm.DB, patientIDs []uuid.UUID) ([]aggregate.Row, error)
	FindConditionRows(db *gorm.DB, patientIDs []uuid.UUID) ([]aggregate.Row, error)
	FindAllergyRows(db *gorm.DB, patientIDs []uuid.UUID) ([]aggregate.Row, error)
}
