package entity

// PatientFilter narrows the patient listing. FullName and Email are
// partial (LIKE) matches; Gender is an exact match. Empty fields are
// ignored.
type PatientFilter struct {
	FullName string
	Email    string
	Gender   string
}

// IsEmpty reports whether no filter field is set
func (f PatientFilter) IsEmpty() bool {
	return f.FullName == "" && f.Email == "" && f.Gender == ""
}
