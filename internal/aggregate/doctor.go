package aggregate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VerifiedDoctor is the assembled public profile of a verified doctor.
// Nested collections are deduplicated: the source join yields one row per
// (doctor x practice x facility x schedule) combination.
type VerifiedDoctor struct {
	ID             uuid.UUID       `json:"id"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Specialization string          `json:"specialization"`
	Biography      string          `json:"biography,omitempty"`
	Rating         float64         `json:"rating"`
	IsVerified     bool            `json:"is_verified"`
	Practices      []*Practice     `json:"practices"`
	Clinics        []Clinic        `json:"clinics"`
	Hospitals      []Hospital      `json:"hospitals"`
	Qualifications []Qualification `json:"qualifications"`
	Documents      []Document      `json:"documents"`
}

type Practice struct {
	ID              int        `json:"id"`
	ConsultationFee float64    `json:"consultation_fee"`
	IsPrimary       bool       `json:"is_primary"`
	Notes           string     `json:"notes,omitempty"`
	ClinicID        *int       `json:"clinic_id,omitempty"`
	DepartmentID    *int       `json:"hospital_department_id,omitempty"`
	Schedules       []Schedule `json:"schedules"`
}

type Schedule struct {
	ID        int    `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Mode      string `json:"mode"`
	IsActive  bool   `json:"is_active"`
}

type Clinic struct {
	ID         int                    `json:"id"`
	Name       string                 `json:"name"`
	Address    string                 `json:"address,omitempty"`
	City       string                 `json:"city,omitempty"`
	Facilities map[string]interface{} `json:"facilities"`
}

// Hospital entries are keyed by (hospital id, department id): the same
// hospital appears once per department a doctor practices in.
type Hospital struct {
	ID             int    `json:"id"`
	DepartmentID   int    `json:"department_id"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	DepartmentName string `json:"department_name"`
	Floor          string `json:"floor,omitempty"`
}

// Qualification has no surrogate id in the source row set; its identity is
// the full (degree, institution, year) tuple.
type Qualification struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

type Document struct {
	ID           int    `json:"id"`
	DocumentType string `json:"document_type"`
	URL          string `json:"url"`
}

// DoctorSet accumulates doctors keyed by id while preserving the
// first-occurrence order of ids in the input row sequence. That order
// governs the final response ordering.
type DoctorSet struct {
	order []uuid.UUID
	byID  map[uuid.UUID]*VerifiedDoctor
	log   *logrus.Logger
}

// BuildDoctorSet folds the main join's flat rows into a keyed set of
// doctors with nested collections. Every insertion into a nested collection
// runs through a dedup check; a row whose foreign key for a nested
// dimension is null contributes nothing to that dimension.
func BuildDoctorSet(rows []Row, log *logrus.Logger) (*DoctorSet, error) {
	set := &DoctorSet{byID: make(map[uuid.UUID]*VerifiedDoctor), log: log}

	for i, row := range rows {
		doctorID, err := row.UUID("doctor_id")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		doctor, ok := set.byID[doctorID]
		if !ok {
			doctor = &VerifiedDoctor{
				ID:             doctorID,
				FullName:       row.String("full_name"),
				Email:          row.String("email"),
				Specialization: row.String("specialization"),
				Biography:      row.String("biography"),
				Rating:         row.Float64("rating"),
				IsVerified:     row.Bool01("is_verified"),
				Practices:      []*Practice{},
				Clinics:        []Clinic{},
				Hospitals:      []Hospital{},
				Qualifications: []Qualification{},
				Documents:      []Document{},
			}
			set.byID[doctorID] = doctor
			set.order = append(set.order, doctorID)
		}

		set.mergePractice(doctor, row)
		set.mergeClinic(doctor, row)
		set.mergeHospital(doctor, row)
	}

	return set, nil
}

func (s *DoctorSet) mergePractice(doctor *VerifiedDoctor, row Row) {
	if row.IsNull("practice_id") {
		return
	}
	practiceID := row.Int("practice_id")

	var practice *Practice
	for _, p := range doctor.Practices {
		if p.ID == practiceID {
			practice = p
			break
		}
	}
	if practice == nil {
		practice = &Practice{
			ID:              practiceID,
			ConsultationFee: row.Float64("consultation_fee"),
			IsPrimary:       row.Bool01("is_primary"),
			Notes:           row.String("practice_notes"),
			Schedules:       []Schedule{},
		}
		if !row.IsNull("clinic_id") {
			id := row.Int("clinic_id")
			practice.ClinicID = &id
		}
		if !row.IsNull("department_id") {
			id := row.Int("department_id")
			practice.DepartmentID = &id
		}
		doctor.Practices = append(doctor.Practices, practice)
	}

	if row.IsNull("schedule_id") {
		return
	}
	scheduleID := row.Int("schedule_id")
	for _, sch := range practice.Schedules {
		if sch.ID == scheduleID {
			return
		}
	}
	practice.Schedules = append(practice.Schedules, Schedule{
		ID:        scheduleID,
		DayOfWeek: row.Int("day_of_week"),
		StartTime: row.String("start_time"),
		EndTime:   row.String("end_time"),
		Mode:      row.String("mode"),
		IsActive:  row.Bool01("schedule_active"),
	})
}

func (s *DoctorSet) mergeClinic(doctor *VerifiedDoctor, row Row) {
	if row.IsNull("clinic_id") {
		return
	}
	clinicID := row.Int("clinic_id")
	for _, c := range doctor.Clinics {
		if c.ID == clinicID {
			return
		}
	}
	doctor.Clinics = append(doctor.Clinics, Clinic{
		ID:         clinicID,
		Name:       row.String("clinic_name"),
		Address:    row.String("clinic_address"),
		City:       row.String("clinic_city"),
		Facilities: row.JSONObject("clinic_facilities", s.log),
	})
}

func (s *DoctorSet) mergeHospital(doctor *VerifiedDoctor, row Row) {
	// both halves of the compound key must be present
	if row.IsNull("hospital_id") || row.IsNull("department_id") {
		return
	}
	hospitalID := row.Int("hospital_id")
	departmentID := row.Int("department_id")
	for _, h := range doctor.Hospitals {
		if h.ID == hospitalID && h.DepartmentID == departmentID {
			return
		}
	}
	doctor.Hospitals = append(doctor.Hospitals, Hospital{
		ID:             hospitalID,
		DepartmentID:   departmentID,
		Name:           row.String("hospital_name"),
		Address:        row.String("hospital_address"),
		City:           row.String("hospital_city"),
		DepartmentName: row.String("department_name"),
		Floor:          row.String("department_floor"),
	})
}

// StitchQualifications merges the qualifications query's rows into the set
// by doctor-id lookup. Duplicate (degree, institution, year) tuples are
// discarded; first seen wins. Rows for ids outside the set are skipped.
func (s *DoctorSet) StitchQualifications(rows []Row) error {
	for i, row := range rows {
		doctorID, err := row.UUID("doctor_id")
		if err != nil {
			return fmt.Errorf("qualification row %d: %w", i, err)
		}
		doctor, ok := s.byID[doctorID]
		if !ok {
			continue
		}

		candidate := Qualification{
			Degree:      row.String("degree"),
			Institution: row.String("institution"),
			Year:        row.Int("year"),
		}
		duplicate := false
		for _, q := range doctor.Qualifications {
			if q == candidate {
				duplicate = true
				break
			}
		}
		if !duplicate {
			doctor.Qualifications = append(doctor.Qualifications, candidate)
		}
	}
	return nil
}

// StitchDocuments merges the documents query's rows into the set, dedup by
// document id.
func (s *DoctorSet) StitchDocuments(rows []Row) error {
	for i, row := range rows {
		doctorID, err := row.UUID("doctor_id")
		if err != nil {
			return fmt.Errorf("document row %d: %w", i, err)
		}
		doctor, ok := s.byID[doctorID]
		if !ok {
			continue
		}

		documentID := row.Int("id")
		duplicate := false
		for _, d := range doctor.Documents {
			if d.ID == documentID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			doctor.Documents = append(doctor.Documents, Document{
				ID:           documentID,
				DocumentType: row.String("document_type"),
				URL:          row.String("url"),
			})
		}
	}
	return nil
}

// IDs returns the doctor ids in first-occurrence order, for scoping the
// secondary queries.
func (s *DoctorSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Len returns the number of distinct doctors in the set
func (s *DoctorSet) Len() int {
	return len(s.order)
}

// Doctors projects the set into an ordered slice matching the
// first-occurrence order of the main query's rows.
func (s *DoctorSet) Doctors() []*VerifiedDoctor {
	doctors := make([]*VerifiedDoctor, 0, len(s.order))
	for _, id := range s.order {
		doctors = append(doctors, s.byID[id])
	}
	return doctors
}
