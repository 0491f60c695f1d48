package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactStatus is the workflow state of an inbound inquiry.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
)

// Valid reports whether the status is one of the enumerated values.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}

// ContactMessage represents an inquiry submitted through the public contact
// form. IPAddress and UserAgent are captured server-side at submission time
// for audit and spam triage; everything except Status is immutable.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string        `json:"name" gorm:"size:255;not null"`
	Email     string        `json:"email" gorm:"size:255;not null"`
	Subject   string        `json:"subject" gorm:"size:255;not null"`
	Message   string        `json:"message" gorm:"size:2000;not null"`
	IPAddress string        `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent string        `json:"user_agent,omitempty" gorm:"size:512"`
	Status    ContactStatus `json:"status" gorm:"size:50;default:'new';index"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
