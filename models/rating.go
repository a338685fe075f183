package models

import "time"

type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GuestID   uint      `gorm:"uniqueIndex:idx_rating_guest_booking;not null" json:"guestId"`
	BookingID uint      `gorm:"uniqueIndex:idx_rating_guest_booking;index;not null" json:"bookingId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Guest     *User     `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
