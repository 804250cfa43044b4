package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image represents an uploaded photo attached to a listing. Images are removed
// with their listing by the store's cascade when a listing row is ever hard
// deleted out-of-band.
type Image struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ListingID    uuid.UUID `json:"listing_id" gorm:"type:char(36);not null;index"`
	URL          string    `json:"url" gorm:"size:500;not null"`
	OriginalName string    `json:"original_name" gorm:"size:255"`
	Size         int64     `json:"size" gorm:"not null;default:0"`
	IsPrimary    bool      `json:"is_primary" gorm:"default:false;index"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime;index"`

	// Relations
	Listing Listing `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
