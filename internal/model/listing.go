package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing represents a motorcycle offered for sale on the dealership site.
// Rows are never hard-deleted by the application; DeletedAt hides them from
// every default-scope query.
type Listing struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Price       string         `json:"price" gorm:"size:100;not null"` // display string, e.g. "KES 150,000"
	Description string         `json:"description" gorm:"type:text"`
	Year        string         `json:"year" gorm:"size:10"`
	Mileage     string         `json:"mileage" gorm:"size:50"`
	Location    string         `json:"location" gorm:"size:255"`
	Featured    bool           `json:"featured" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Images []Image `json:"images" gorm:"foreignKey:ListingID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
