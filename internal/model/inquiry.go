package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry represents a sell-to-us request submitted by a visitor. Rows are
// append-only; attached photos are counted and discarded, never stored.
type Inquiry struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Phone       string    `json:"phone" gorm:"size:50;not null"`
	Model       string    `json:"model" gorm:"size:255"`
	Year        string    `json:"year" gorm:"size:10"`
	Details     string    `json:"details" gorm:"type:text"`
	PhotosCount int       `json:"photos_count" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
