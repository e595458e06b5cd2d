package aggregate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patientRow(id uuid.UUID, overrides Row) Row {
	row := Row{
		"patient_id":    id.String(),
		"full_name":     "Ravi Kumar",
		"email":         "ravi@example.com",
		"phone_number":  "9999999999",
		"gender":        "Male",
		"blood_group":   "O+",
		"address":       "12 Lake Road",
		"date_of_birth": time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		"is_active":     int64(1),
		"created_at":    time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestBuildPatientSet(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	rows := []Row{
		patientRow(first, nil),
		patientRow(second, Row{"full_name": "Meera Shah", "gender": "Female"}),
		// duplicate row for the first patient is folded away
		patientRow(first, Row{"full_name": "Should Not Overwrite"}),
	}

	set, err := BuildPatientSet(rows)
	require.NoError(t, err)

	require.Equal(t, 2, set.Len())
	patients := set.Patients()
	assert.Equal(t, first, patients[0].ID)
	assert.Equal(t, "Ravi Kumar", patients[0].FullName)
	assert.Equal(t, second, patients[1].ID)
	assert.Equal(t, "Meera Shah", patients[1].FullName)

	assert.NotNil(t, patients[0].Documents)
	assert.NotNil(t, patients[0].Conditions)
	assert.NotNil(t, patients[0].Allergies)
}

func TestBuildPatientSetNullIDFails(t *testing.T) {
	_, err := BuildPatientSet([]Row{{"patient_id": nil}})
	assert.Error(t, err)
}

func TestPatientStitchDocuments(t *testing.T) {
	id := uuid.New()
	set, err := BuildPatientSet([]Row{patientRow(id, nil)})
	require.NoError(t, err)

	err = set.StitchDocuments([]Row{
		{"patient_id": id.String(), "id": int64(1), "document_type": "insurance", "url": "https://cdn/ins"},
		{"patient_id": id.String(), "id": int64(1), "document_type": "insurance", "url": "https://cdn/ins"},
		{"patient_id": uuid.New().String(), "id": int64(9), "document_type": "report", "url": "https://cdn/rep"},
	})
	require.NoError(t, err)

	patient := set.Patients()[0]
	require.Len(t, patient.Documents, 1)
	assert.Equal(t, "insurance", patient.Documents[0].DocumentType)
}

func TestPatientStitchConditionsFormatsDiagnosedAt(t *testing.T) {
	id := uuid.New()
	set, err := BuildPatientSet([]Row{patientRow(id, nil)})
	require.NoError(t, err)

	diagnosed := time.Date(2022, 11, 3, 15, 30, 0, 0, time.UTC)
	err = set.StitchConditions([]Row{
		{"patient_id": id.String(), "id": int64(1), "name": "Hypertension", "diagnosed_at": diagnosed, "notes": "stage 1"},
		{"patient_id": id.String(), "id": int64(2), "name": "Diabetes", "diagnosed_at": nil, "notes": nil},
	})
	require.NoError(t, err)

	patient := set.Patients()[0]
	require.Len(t, patient.Conditions, 2)
	assert.Equal(t, "2022-11-03", patient.Conditions[0].DiagnosedAt)
	assert.Equal(t, "", patient.Conditions[1].DiagnosedAt)
}

func TestPatientStitchAllergies(t *testing.T) {
	id := uuid.New()
	set, err := BuildPatientSet([]Row{patientRow(id, nil)})
	require.NoError(t, err)

	err = set.StitchAllergies([]Row{
		{"patient_id": id.String(), "id": int64(1), "allergen": "Penicillin", "severity": "severe"},
		{"patient_id": id.String(), "id": int64(1), "allergen": "Penicillin", "severity": "severe"},
		{"patient_id": id.String(), "id": int64(2), "allergen": "Dust", "severity": "mild"},
	})
	require.NoError(t, err)

	patient := set.Patients()[0]
	require.Len(t, patient.Allergies, 2)
	assert.Equal(t, "Penicillin", patient.Allergies[0].Allergen)
	assert.Equal(t, "Dust", patient.Allergies[1].Allergen)
}
