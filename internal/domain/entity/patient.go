package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender      string    `gorm:"type:varchar(10);index" json:"gender,omitempty"`
	BloodGroup  string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User       User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Documents  []PatientDocument  `gorm:"foreignKey:PatientID" json:"documents,omitempty"`
	Conditions []PatientCondition `gorm:"foreignKey:PatientID" json:"conditions,omitempty"`
	Allergies  []PatientAllergy   `gorm:"foreignKey:PatientID" json:"allergies,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// PatientDocument is a medical record file reference
type PatientDocument struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DocumentType string    `gorm:"type:varchar(50);not null" json:"document_type"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PatientDocument) TableName() string {
	return "patient_documents"
}

type PatientCondition struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	DiagnosedAt *time.Time `gorm:"type:date" json:"diagnosed_at,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
}

func (PatientCondition) TableName() string {
	return "patient_conditions"
}

type PatientAllergy struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Allergen  string    `gorm:"type:varchar(255);not null" json:"allergen"`
	Severity  string    `gorm:"type:varchar(20)" json:"severity,omitempty"`
}

func (PatientAllergy) TableName() string {
	return "patient_allergies"
}
