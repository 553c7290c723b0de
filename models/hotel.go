package models

import (
	"time"

	"gorm.io/datatypes"
)

// Hotel is read-only catalog data. Rows come from seeding or from the
// deals catalog mapping; they are never edited through the API.
type Hotel struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	Location    string         `gorm:"size:255" json:"location"` // "City, Region"
	Rating      float64        `json:"rating"`
	Price       float64        `json:"price"` // nightly rate
	Image       string         `gorm:"size:512" json:"image"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Category    string         `gorm:"size:100" json:"category,omitempty"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Source      string         `gorm:"size:20" json:"source,omitempty"` // "seed" or "catalog"
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}
