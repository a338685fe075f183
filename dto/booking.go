package dto

import (
	"hotel-booking/models"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	CheckInDate   string           `json:"checkInDate" binding:"required,date"`
	CheckOutDate  string           `json:"checkOutDate" binding:"required,date"`
	RoomIDs       []uint           `json:"roomIds" binding:"required,min=1,dive,gt=0"`
	PaymentMethod string           `json:"paymentMethod" binding:"required,oneof=credit_card paypal cash"`
	TotalPayment  *decimal.Decimal `json:"totalPayment" binding:"required"`
	SourceToken   string           `json:"sourceToken"`
}

// UpdateBookingRequest carries only the fields being changed.
type UpdateBookingRequest struct {
	CheckInDate   *string          `json:"checkInDate" binding:"omitempty,date"`
	CheckOutDate  *string          `json:"checkOutDate" binding:"omitempty,date"`
	RoomIDs       *[]uint          `json:"roomIds" binding:"omitempty,min=1,dive,gt=0"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,oneof=credit_card paypal cash"`
	TotalPayment  *decimal.Decimal `json:"totalPayment"`
	ReceiptURL    *string          `json:"receiptUrl" binding:"omitempty,url"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=255"`
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=confirmed cancelled completed"`
	Reason *string `json:"reason" binding:"omitempty,max=255"`
}

type BookingListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	FromDate string `form:"from_date" binding:"omitempty,date"`
	ToDate   string `form:"to_date" binding:"omitempty,date"`
	PageQuery
}

type AvailabilityQuery struct {
	RoomIDs  []uint `form:"-" binding:"required,min=1,dive,gt=0"`
	CheckIn  string `form:"check_in" binding:"required,date"`
	CheckOut string `form:"check_out" binding:"required,date"`
}

type AvailabilityResponse struct {
	Available        bool                     `json:"available"`
	UnavailableRooms []models.UnavailableRoom `json:"unavailableRooms"`
}

type CancellationPolicyResponse struct {
	Policy string   `json:"policy"`
	Terms  []string `json:"terms"`
}
