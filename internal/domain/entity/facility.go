package entity

// Clinic is a standalone practice location
type Clinic struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Address    string `gorm:"type:text" json:"address,omitempty"`
	City       string `gorm:"type:varchar(100);index" json:"city,omitempty"`
	Facilities JSON   `gorm:"type:jsonb" json:"facilities,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// Hospital groups departments; a doctor practices in a department, not the
// hospital itself
type Hospital struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Address string `gorm:"type:text" json:"address,omitempty"`
	City    string `gorm:"type:varchar(100);index" json:"city,omitempty"`

	// Relationships
	Departments []HospitalDepartment `gorm:"foreignKey:HospitalID" json:"departments,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

type HospitalDepartment struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalID int    `gorm:"not null;index" json:"hospital_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Floor      string `gorm:"type:varchar(20)" json:"floor,omitempty"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (HospitalDepartment) TableName() string {
	return "hospital_departments"
}
