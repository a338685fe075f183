package builders

import (
	"time"

	"hotel-booking/constants"
	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/shopspring/decimal"
)

// BookingBuilder assembles a new booking and its payment step by step.
type BookingBuilder struct {
	booking *models.Booking
	payment *models.Payment
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{BookingStatus: constants.BookingStatusPending},
		payment: &models.Payment{PaymentStatus: constants.PaymentStatusPending},
	}
}

func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = utils.ToDate(checkIn)
	b.booking.CheckOutDate = utils.ToDate(checkOut)
	return b
}

func (b *BookingBuilder) WithRooms(roomIDs []uint) *BookingBuilder {
	b.booking.BookingRooms = make([]models.BookingRoom, 0, len(roomIDs))
	for _, id := range roomIDs {
		b.booking.BookingRooms = append(b.booking.BookingRooms, models.BookingRoom{RoomID: id})
	}
	return b
}

func (b *BookingBuilder) WithPayment(method string, total decimal.Decimal) *BookingBuilder {
	b.payment.MethodPayment = method
	b.payment.TotalPayment = total
	return b
}

// Build returns the pending booking and its payment draft. The payment gets
// its booking id once the booking is stored.
func (b *BookingBuilder) Build() (*models.Booking, *models.Payment) {
	return b.booking, b.payment
}
