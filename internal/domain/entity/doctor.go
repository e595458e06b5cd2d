package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents doctor-specific profile data.
//
// IsVerified is tri-state: nil = never reviewed, false = pending review,
// true = verified. Only verified doctors appear in the public directory.
type Doctor struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`
	IsVerified     *bool     `gorm:"index" json:"is_verified"`
	Rating         float64   `gorm:"not null;default:0" json:"rating"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           User                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Qualifications []DoctorQualification `gorm:"foreignKey:DoctorID" json:"qualifications,omitempty"`
	Documents      []DoctorDocument      `gorm:"foreignKey:DoctorID" json:"documents,omitempty"`
	Practices      []DoctorPractice      `gorm:"foreignKey:DoctorID" json:"practices,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorQualification has no surrogate key in the source row set; the
// natural key is (degree, institution, completion year).
type DoctorQualification struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"-"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Degree      string    `gorm:"type:varchar(100);not null" json:"degree"`
	Institution string    `gorm:"type:varchar(255);not null" json:"institution"`
	Year        int       `gorm:"not null" json:"year"`
}

func (DoctorQualification) TableName() string {
	return "doctor_qualifications"
}

// DoctorDocument is an uploaded verification document
type DoctorDocument struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DocumentType string    `gorm:"type:varchar(50);not null" json:"document_type"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DoctorDocument) TableName() string {
	return "doctor_documents"
}

// DoctorPractice links a doctor to either a clinic or a hospital department.
// Exactly one of ClinicID / HospitalDepartmentID is expected non-null in
// well-formed data; the system does not enforce this.
type DoctorPractice struct {
	ID                   int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID             uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ClinicID             *int      `gorm:"index" json:"clinic_id,omitempty"`
	HospitalDepartmentID *int      `gorm:"index" json:"hospital_department_id,omitempty"`
	ConsultationFee      float64   `gorm:"not null;default:0" json:"consultation_fee"`
	IsPrimary            bool      `gorm:"not null;default:false" json:"is_primary"`
	Notes                string    `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Clinic             *Clinic             `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	HospitalDepartment *HospitalDepartment `gorm:"foreignKey:HospitalDepartmentID" json:"hospital_department,omitempty"`
	Schedules          []DoctorSchedule    `gorm:"foreignKey:PracticeID" json:"schedules,omitempty"`
}

func (DoctorPractice) TableName() string {
	return "doctor_practices"
}

// ConsultationMode enumerates how a scheduled slot is delivered
type ConsultationMode string

const (
	ConsultationModeOnline   ConsultationMode = "online"
	ConsultationModeInPerson ConsultationMode = "in_person"
	ConsultationModeHomeCall ConsultationMode = "home_call"
)

// DoctorSchedule represents a recurring weekly consultation slot for a practice
type DoctorSchedule struct {
	ID         int              `gorm:"primaryKey;autoIncrement" json:"id"`
	PracticeID int              `gorm:"not null;index" json:"practice_id"`
	DayOfWeek  int              `gorm:"not null" json:"day_of_week"`
	StartTime  string           `gorm:"type:time;not null" json:"start_time"`
	EndTime    string           `gorm:"type:time;not null" json:"end_time"`
	Mode       ConsultationMode `gorm:"type:varchar(20);not null;default:'in_person'" json:"mode"`
	IsActive   bool             `gorm:"not null;default:true" json:"is_active"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}
