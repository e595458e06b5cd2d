package aggregate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PatientProfile is the assembled patient record with its satellite
// collections. Each nested record is a simple value with no further nesting.
type PatientProfile struct {
	ID          uuid.UUID          `json:"id"`
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number,omitempty"`
	Gender      string             `json:"gender,omitempty"`
	BloodGroup  string             `json:"blood_group,omitempty"`
	Address     string             `json:"address,omitempty"`
	DateOfBirth time.Time          `json:"date_of_birth"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
	Documents   []PatientDocument  `json:"documents"`
	Conditions  []PatientCondition `json:"conditions"`
	Allergies   []PatientAllergy   `json:"allergies"`
}

type PatientDocument struct {
	ID           int    `json:"id"`
	DocumentType string `json:"document_type"`
	URL          string `json:"url"`
}

type PatientCondition struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DiagnosedAt string `json:"diagnosed_at,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type PatientAllergy struct {
	ID       int    `json:"id"`
	Allergen string `json:"allergen"`
	Severity string `json:"severity,omitempty"`
}

// PatientSet accumulates patients keyed by id in first-occurrence order
type PatientSet struct {
	order []uuid.UUID
	byID  map[uuid.UUID]*PatientProfile
}

// BuildPatientSet folds the main query's rows into a keyed patient set.
// The main query joins only users, so each patient appears on exactly one
// row; the fold still guards against duplicates so that query changes do
// not silently multiply patients.
func BuildPatientSet(rows []Row) (*PatientSet, error) {
	set := &PatientSet{byID: make(map[uuid.UUID]*PatientProfile)}

	for i, row := range rows {
		patientID, err := row.UUID("patient_id")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		if _, ok := set.byID[patientID]; ok {
			continue
		}
		set.byID[patientID] = &PatientProfile{
			ID:          patientID,
			FullName:    row.String("full_name"),
			Email:       row.String("email"),
			PhoneNumber: row.String("phone_number"),
			Gender:      row.String("gender"),
			BloodGroup:  row.String("blood_group"),
			Address:     row.String("address"),
			DateOfBirth: row.Time("date_of_birth"),
			IsActive:    row.Bool01("is_active"),
			CreatedAt:   row.Time("created_at"),
			Documents:   []PatientDocument{},
			Conditions:  []PatientCondition{},
			Allergies:   []PatientAllergy{},
		}
		set.order = append(set.order, patientID)
	}

	return set, nil
}

// StitchDocuments merges document rows by patient-id lookup, dedup by id
func (s *PatientSet) StitchDocuments(rows []Row) error {
	for i, row := range rows {
		patient, err := s.lookup(row, i, "document")
		if err != nil {
			return err
		}
		if patient == nil {
			continue
		}

		documentID := row.Int("id")
		duplicate := false
		for _, d := range patient.Documents {
			if d.ID == documentID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			patient.Documents = append(patient.Documents, PatientDocument{
				ID:           documentID,
				DocumentType: row.String("document_type"),
				URL:          row.String("url"),
			})
		}
	}
	return nil
}

// StitchConditions merges condition rows by patient-id lookup, dedup by id
func (s *PatientSet) StitchConditions(rows []Row) error {
	for i, row := range rows {
		patient, err := s.lookup(row, i, "condition")
		if err != nil {
			return err
		}
		if patient == nil {
			continue
		}

		conditionID := row.Int("id")
		duplicate := false
		for _, c := range patient.Conditions {
			if c.ID == conditionID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			condition := PatientCondition{
				ID:    conditionID,
				Name:  row.String("name"),
				Notes: row.String("notes"),
			}
			if !row.IsNull("diagnosed_at") {
				condition.DiagnosedAt = row.Time("diagnosed_at").Format("2006-01-02")
			}
			patient.Conditions = append(patient.Conditions, condition)
		}
	}
	return nil
}

// StitchAllergies merges allergy rows by patient-id lookup, dedup by id
func (s *PatientSet) StitchAllergies(rows []Row) error {
	for i, row := range rows {
		patient, err := s.lookup(row, i, "allergy")
		if err != nil {
			return err
		}
		if patient == nil {
			continue
		}

		allergyID := row.Int("id")
		duplicate := false
		for _, a := range patient.Allergies {
			if a.ID == allergyID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			patient.Allergies = append(patient.Allergies, PatientAllergy{
				ID:       allergyID,
				Allergen: row.String("allergen"),
				Severity: row.String("severity"),
			})
		}
	}
	return nil
}

func (s *PatientSet) lookup(row Row, index int, kind string) (*PatientProfile, error) {
	patientID, err := row.UUID("patient_id")
	if err != nil {
		return nil, fmt.Errorf("%s row %d: %w", kind, index, err)
	}
	return s.byID[patientID], nil
}

// IDs returns patient ids in first-occurrence order
func (s *PatientSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Len returns the number of distinct patients in the set
func (s *PatientSet) Len() int {
	return len(s.order)
}

// Patients projects the set into an ordered slice
func (s *PatientSet) Patients() []*PatientProfile {
	patients := make([]*PatientProfile, 0, len(s.order))
	for _, id := range s.order {
		patients = append(patients, s.byID[id])
	}
	return patients
}
