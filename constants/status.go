package constants

import "time"

// Roles
const (
	RoleRegular    = 1
	RoleAdmin      = 2
	RoleSuperAdmin = 3
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment status
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment methods
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
	PaymentMethodCash       = "cash"
)

// Booking events
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
	EventBookingPending   = "booking.pending"
)

const (
	DateLayout = "2006-01-02"

	NoCancelWindow = 24 * time.Hour

	DefaultPerPage = 10
	MaxPerPage     = 100

	MaxCommentLength = 500
	MaxReasonLength  = 255

	DefaultRoomImage = "no_image.jpg"
)

const (
	CancellationPolicyText = "Bookings can only be cancelled at least 24 hours before check-in"
	CancellationBlockedMsg = "Cannot cancel booking less than 24 hours before check-in"
	RoomsUnavailableMsg    = "Some rooms are not available for the selected dates"

	CancellationPolicySummary = "Bookings can be cancelled free of charge at least 24 hours before the check-in date. " +
		"Cancellations made less than 24 hours before check-in are not refundable."
)

// CancellationTerms lists the terms shown next to the cancellation policy.
var CancellationTerms = []string{
	"Cancellations must be made at least 24 hours before the check-in date for a full refund.",
	"Cancellations made less than 24 hours before check-in are not eligible for a refund.",
	"No-shows will be charged the full amount of the booking.",
	"Early departure will not result in a refund for unused nights.",
	"All refunds will be processed within 7-14 business days.",
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCreditCard, PaymentMethodPaypal, PaymentMethodCash:
		return true
	}
	return false
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

func IsValidRole(role int) bool {
	return role == RoleRegular || role == RoleAdmin || role == RoleSuperAdmin
}
