package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatusConfirmed is the only status a record is ever written
// with; there is no edit, cancel or delete path.
const BookingStatusConfirmed = "confirmed"

// Booking is the persisted, immutable record of a confirmed
// reservation. The hotel fields are a snapshot taken at write time, so
// later changes to a hotel's nightly price never affect stored records.
type Booking struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        uint      `gorm:"index;column:user_id" json:"user_id"`
	HotelID       string    `gorm:"size:64;column:hotel_id" json:"hotel_id"`
	HotelName     string    `gorm:"size:255;column:hotel_name" json:"hotel_name"`
	HotelLocation string    `gorm:"size:255;column:hotel_location" json:"hotel_location"`
	HotelPrice    float64   `gorm:"column:hotel_price" json:"hotel_price"`
	CheckIn       time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut      time.Time `gorm:"column:check_out" json:"check_out"`
	Rooms         int       `json:"rooms"`
	Total         float64   `json:"total"`
	Status        string    `gorm:"size:32" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusConfirmed
	}
	return nil
}
