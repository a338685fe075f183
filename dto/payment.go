package dto

import "github.com/shopspring/decimal"

type ProcessPaymentRequest struct {
	BookingID     uint             `json:"bookingId" binding:"required,gt=0"`
	PaymentMethod string           `json:"paymentMethod" binding:"required,oneof=credit_card paypal cash"`
	TotalPayment  *decimal.Decimal `json:"totalPayment" binding:"required"`
	SourceToken   string           `json:"sourceToken"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=pending completed failed refunded"`
}

type PaymentListQuery struct {
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending completed failed refunded"`
	FromDate      string `form:"from_date" binding:"omitempty,date"`
	ToDate        string `form:"to_date" binding:"omitempty,date"`
	PageQuery
}

type PaymentMethodInfo struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	RequiresAdditionalInfo bool   `json:"requiresAdditionalInfo"`
}
