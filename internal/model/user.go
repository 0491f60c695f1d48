package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role identifies the capability level of a user account.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
	// RoleAdmin grants access to content and user management.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// SocialLinks holds optional profile links, stored as a JSON column.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// User represents an account in the system.
type User struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string       `json:"name" gorm:"size:255;not null"`
	Email        string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role         `json:"role" gorm:"size:50;default:'user';index"`
	IsActive     bool         `json:"is_active" gorm:"default:true"`
	Bio          string       `json:"bio,omitempty" gorm:"size:500"`
	SocialLinks  *SocialLinks `json:"social_links,omitempty" gorm:"serializer:json"`
	LastLogin    *time.Time   `json:"last_login,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
