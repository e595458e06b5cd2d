package dto

import (
	"carelink-backend/internal/aggregate"
)

type VerifiedDoctorListResponse struct {
	Doctors []*aggregate.VerifiedDoctor `json:"doctors"`
	Total   int                         `json:"total"`
}

type PatientListResponse struct {
	Patients []*aggregate.PatientProfile `json:"patients"`
	Total    int                         `json:"total"`
}
