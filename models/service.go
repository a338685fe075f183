package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Service is a catalogue entry that can be attached to bookings.
type Service struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ServiceTypeID uint            `gorm:"index;not null" json:"serviceTypeId"`
	ServiceType   *ServiceType    `gorm:"foreignKey:ServiceTypeID" json:"serviceType,omitempty"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Available     bool            `gorm:"not null" json:"available"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BookingService is an add-on line item on a booking.
type BookingService struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BookingID     uint            `gorm:"index;not null" json:"bookingId"`
	ServiceID     uint            `gorm:"index;not null" json:"serviceId"`
	ServiceTypeID uint            `gorm:"not null" json:"serviceTypeId"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Service       *Service        `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	ServiceType   *ServiceType    `gorm:"foreignKey:ServiceTypeID" json:"serviceType,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// All lists every model for auto migration.
func All() []interface{} {
	return []interface{}{
		&User{}, &RoomType{}, &Room{}, &Booking{}, &BookingRoom{}, &Payment{},
		&ServiceType{}, &Service{}, &BookingService{}, &Rating{}, &BookingHistory{},
	}
}
