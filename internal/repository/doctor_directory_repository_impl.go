package repository

import (
	"carelink-backend/internal/aggregate"
	domainRepo "carelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// verifiedDetailQuery is the main aggregation join. It yields one row per
// (doctor x practice x facility x schedule) combination; the fold in the
// aggregate package collapses that back into nested collections. The WHERE
// clause guarantees doctor_id is non-null on every row.
const verifiedDetailQuery = `
SELECT
	d.user_id            AS doctor_id,
	u.full_name,
	u.email,
	d.specialization,
	d.biography,
	d.rating,
	d.is_verified,
	dp.id                AS practice_id,
	dp.consultation_fee,
	dp.is_primary,
	dp.notes             AS practice_notes,
	c.id                 AS clinic_id,
	c.name               AS clinic_name,
	c.address            AS clinic_address,
	c.city               AS clinic_city,
	c.facilities         AS clinic_facilities,
	hd.id                AS department_id,
	hd.name              AS department_name,
	hd.floor             AS department_floor,
	h.id                 AS hospital_id,
	h.name               AS hospital_name,
	h.address            AS hospital_address,
	h.city               AS hospital_city,
	ds.id                AS schedule_id,
	ds.day_of_week,
	ds.start_time,
	ds.end_time,
	ds.mode,
	ds.is_active         AS schedule_active
FROM doctors d
JOIN users u ON u.id = d.user_id
LEFT JOIN doctor_practices dp ON dp.doctor_id = d.user_id
LEFT JOIN clinics c ON c.id = dp.clinic_id
LEFT JOIN hospital_departments hd ON hd.id = dp.hospital_department_id
LEFT JOIN hospitals h ON h.id = hd.hospital_id
LEFT JOIN doctor_schedules ds ON ds.practice_id = dp.id
WHERE d.is_verified = TRUE AND u.is_active = TRUE
ORDER BY u.full_name ASC, dp.id ASC, ds.id ASC`

const doctorQualificationQuery = `
SELECT doctor_id, degree, institution, year
FROM doctor_qualifications
WHERE doctor_id IN ?
ORDER BY year DESC`

const doctorDocumentQuery = `
SELECT id, doctor_id, document_type, url
FROM doctor_documents
WHERE doctor_id IN ?
ORDER BY id ASC`

type doctorDirectoryRepository struct{}

func NewDoctorDirectoryRepository() domainRepo.DoctorDirectoryRepository {
	return &doctorDirectoryRepository{}
}

func (r *doctorDirectoryRepository) FindVerifiedDetailRows(db *gorm.DB) ([]aggregate.Row, error) {
	rows, err := db.Raw(verifiedDetailQuery).Rows()
	if err != nil {
		return nil, err
	}
	return aggregate.ScanRows(rows)
}

func (r *doctorDirectoryRepository) FindQualificationRows(db *gorm.DB, doctorIDs []uuid.UUID) ([]aggregate.Row, error) {
	if len(doctorIDs) == 0 {
		return nil, nil
	}
	rows, err := db.Raw(doctorQualificationQuery, doctorIDs).Rows()
	if err != nil {
		return nil, err
	}
	return aggregate.ScanRows(rows)
}

func (r *doctorDirectoryRepository) FindDocumentRows(db *gorm.DB, doctorIDs []uuid.UUID) ([]aggregate.Row, error) {
	if len(doctorIDs) == 0 {
		return nil, nil
	}
	rows, err := db.Raw(doctorDocumentQuery, doctorIDs).Rows()
	if err != nil {
		return nil, err
	}
	return aggregate.ScanRows(rows)
}
