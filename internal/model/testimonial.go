package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTestimonialColor is the display color tag applied when a testimonial
// is created without one.
const DefaultTestimonialColor = "blue"

// Testimonial represents a customer quote shown on the site.
type Testimonial struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Location  string         `json:"location" gorm:"size:255"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Color     string         `json:"color" gorm:"size:50;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
