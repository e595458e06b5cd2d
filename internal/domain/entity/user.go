package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role     Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Contacts []UserContact `gorm:"foreignKey:UserID" json:"contacts,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserContact holds additional contact channels for a user
type UserContact struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ContactType string    `gorm:"type:varchar(20);not null" json:"contact_type"`
	Value       string    `gorm:"type:varchar(255);not null" json:"value"`
	IsPrimary   bool      `gorm:"not null;default:false" json:"is_primary"`
}

func (UserContact) TableName() string {
	return "user_contacts"
}
