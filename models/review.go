package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelID   string    `gorm:"size:64;index;column:hotel_id" json:"hotel_id"`
	UserID    uint      `gorm:"column:user_id" json:"user_id,omitempty"`
	Name      string    `gorm:"size:255" json:"name"`
	Rating    int       `json:"rating"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
