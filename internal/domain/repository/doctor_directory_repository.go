package repository

import (
	"carelink-backend/internal/aggregate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorDirectoryRepository runs the verified-details aggregation queries.
// The main query returns the doctor x practice x facility x schedule join;
// the secondary queries are scoped by the doctor id set it produced.
type DoctorDirectoryRepository interface {
	FindVerifiedDetailRows(db *gorm.DB) ([]aggregate.Row, error)
	FindQualificationRows(db *gorm.DB, doctorIDs []uuid.UUID) ([]aggregate.Row, error)
	FindDocumentRows(db *gorm.DB, doctorIDs []uuid.UUID) ([]aggregate.Row, error)
}
