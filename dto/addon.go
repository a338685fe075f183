package dto

import "github.com/shopspring/decimal"

type CreateBookingServiceRequest struct {
	BookingID     uint             `json:"bookingId" binding:"required,gt=0"`
	ServiceID     uint             `json:"serviceId" binding:"required,gt=0"`
	ServiceTypeID uint             `json:"serviceTypeId" binding:"required,gt=0"`
	Quantity      int              `json:"quantity" binding:"required,min=1"`
	Price         *decimal.Decimal `json:"price" binding:"required"`
}

type UpdateBookingServiceRequest struct {
	Quantity *int             `json:"quantity" binding:"omitempty,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

type CreateServiceTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type CreateServiceRequest struct {
	ServiceTypeID uint             `json:"serviceTypeId" binding:"required,gt=0"`
	Name          string           `json:"name" binding:"required,max=100"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price" binding:"required"`
	Available     *bool            `json:"available"`
}
