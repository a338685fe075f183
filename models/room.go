package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Capacity    int             `gorm:"not null" json:"capacity"`
	Description string          `gorm:"type:text" json:"description"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomNumber  string    `gorm:"size:20;uniqueIndex;not null" json:"roomNumber"`
	RoomTypeID  uint      `gorm:"index;not null" json:"roomTypeId"`
	RoomType    *RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// UnavailableRoom is a room already held by an overlapping booking.
type UnavailableRoom struct {
	RoomID     uint   `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
}
