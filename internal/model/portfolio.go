package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies a portfolio item.
type Category string

const (
	CategoryWeb    Category = "web"
	CategoryMobile Category = "mobile"
	CategoryDesign Category = "design"
	CategoryOther  Category = "other"
)

// Valid reports whether the category is one of the enumerated values.
func (c Category) Valid() bool {
	switch c {
	case CategoryWeb, CategoryMobile, CategoryDesign, CategoryOther:
		return true
	}
	return false
}

// PortfolioItem represents a showcased work unit.
type PortfolioItem struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title" gorm:"size:100;not null"`
	Description  string    `json:"description" gorm:"size:1000;not null"`
	Image        string    `json:"image" gorm:"size:2048;not null"`
	Video        string    `json:"video,omitempty" gorm:"size:2048"`
	Category     Category  `json:"category" gorm:"size:50;not null;index"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	LiveURL      string    `json:"live_url,omitempty" gorm:"size:2048"`
	GithubURL    string    `json:"github_url,omitempty" gorm:"size:2048"`
	Featured     bool      `json:"featured" gorm:"default:false;index"`
	Order        int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
