package models

import (
	"time"

	"hotel-booking/constants"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Booking struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	UserID             uint             `gorm:"index;not null" json:"userId"`
	User               *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BookingStatus      string           `gorm:"size:16;index;not null;default:pending" json:"bookingStatus"`
	CheckInDate        datatypes.Date   `gorm:"index;not null" json:"checkInDate"`
	CheckOutDate       datatypes.Date   `gorm:"index;not null" json:"checkOutDate"`
	CancellationReason *string          `gorm:"type:text" json:"cancellationReason"`
	BookingRooms       []BookingRoom    `gorm:"foreignKey:BookingID" json:"bookingRooms"`
	Payment            *Payment         `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
	Services           []BookingService `gorm:"foreignKey:BookingID" json:"services,omitempty"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Booking) CheckIn() time.Time {
	return time.Time(b.CheckInDate)
}

func (b *Booking) CheckOut() time.Time {
	return time.Time(b.CheckOutDate)
}

// RoomIDs returns the ids of the loaded BookingRooms.
func (b *Booking) RoomIDs() []uint {
	ids := make([]uint, 0, len(b.BookingRooms))
	for _, br := range b.BookingRooms {
		ids = append(ids, br.RoomID)
	}
	return ids
}

func (b *Booking) IsTerminal() bool {
	return b.BookingStatus == constants.BookingStatusCancelled || b.BookingStatus == constants.BookingStatusCompleted
}

type BookingRoom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"uniqueIndex:idx_booking_room;not null" json:"bookingId"`
	RoomID    uint      `gorm:"uniqueIndex:idx_booking_room;index;not null" json:"roomId"`
	Room      *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BookingID     uint            `gorm:"uniqueIndex;not null" json:"bookingId"`
	Booking       *Booking        `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	TotalPayment  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPayment"`
	MethodPayment string          `gorm:"size:20;not null" json:"methodPayment"`
	TransactionID *string         `gorm:"size:100" json:"transactionId"`
	PaymentStatus string          `gorm:"size:16;index;not null;default:pending" json:"paymentStatus"`
	ReceiptURL    *string         `json:"receiptUrl"`
	DatePayment   time.Time       `gorm:"index" json:"datePayment"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BookingHistory records one status transition of a booking.
type BookingHistory struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	BookingID  uint          `gorm:"index;not null" json:"bookingId"`
	ActorID    uint          `json:"actorId"`
	FromStatus string        `gorm:"size:16" json:"fromStatus"`
	ToStatus   string        `gorm:"size:16;not null" json:"toStatus"`
	RoomIDs    pq.Int64Array `gorm:"type:text" json:"roomIds"`
	Note       string        `gorm:"type:text" json:"note"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"createdAt"`
}

// OccupancyReport summarizes one calendar day.
type OccupancyReport struct {
	Date       string `json:"date"`
	Arrivals   int64  `json:"arrivals"`
	Departures int64  `json:"departures"`
	InHouse    int64  `json:"inHouse"`
}
