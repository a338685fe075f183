package services

import (
	"context"
	"testing"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unpaidBooking stores a pending booking without a payment.
func (f *fixture) unpaidBooking(t *testing.T, owner Actor, roomIdx int) *models.Booking {
	t.Helper()
	ctx := context.Background()
	b := &models.Booking{
		UserID:        owner.ID,
		BookingStatus: constants.BookingStatusPending,
		CheckInDate:   utils.ToDate(time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)),
		CheckOutDate:  utils.ToDate(time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, f.repo.CreateBooking(ctx, b))
	require.NoError(t, f.repo.AddBookingRooms(ctx, b.ID, f.roomIDs(roomIdx)))
	return b
}

func TestProcessPayment_CardConfirmsBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.unpaidBooking(t, guest, 0)

	payment, err := f.payments.ProcessPayment(ctx, guest, dto.ProcessPaymentRequest{
		BookingID:     b.ID,
		PaymentMethod: constants.PaymentMethodCreditCard,
		TotalPayment:  amount(99),
		SourceToken:   "tok_visa",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusCompleted, payment.PaymentStatus)
	assert.Equal(t, int64(9900), f.charges[0].AmountCents)

	reloaded, err := f.repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, reloaded.BookingStatus)
	assert.Equal(t, []string{constants.EventBookingConfirmed}, f.events.Types())
}

func TestProcessPayment_CashKeepsPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.unpaidBooking(t, guest, 0)

	payment, err := f.payments.ProcessPayment(ctx, guest, dto.ProcessPaymentRequest{
		BookingID:     b.ID,
		PaymentMethod: constants.PaymentMethodCash,
		TotalPayment:  amount(99),
	})

	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPending, payment.PaymentStatus)
	reloaded, _ := f.repo.GetBooking(ctx, b.ID)
	assert.Equal(t, constants.BookingStatusPending, reloaded.BookingStatus)
	assert.Empty(t, f.events.Types())
}

func TestProcessPayment_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	paid := f.book(t, guest, constants.PaymentMethodCash, "2030-06-20", "2030-06-22", f.roomIDs(1)...)
	unpaid := f.unpaidBooking(t, guest, 0)
	cancelled := f.unpaidBooking(t, guest, 2)
	_, err := f.bookings.Cancel(ctx, guest, cancelled.ID, nil)
	require.NoError(t, err)

	req := func(bookingID uint) dto.ProcessPaymentRequest {
		return dto.ProcessPaymentRequest{BookingID: bookingID, PaymentMethod: constants.PaymentMethodCash, TotalPayment: amount(10)}
	}

	_, err = f.payments.ProcessPayment(ctx, guest, req(404))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = f.payments.ProcessPayment(ctx, other, req(unpaid.ID))
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	_, err = f.payments.ProcessPayment(ctx, guest, req(paid.ID))
	require.Error(t, err)
	assert.Equal(t, "Booking already has a payment", apperrors.GetAppError(err).Message)

	_, err = f.payments.ProcessPayment(ctx, guest, req(cancelled.ID))
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	noToken := req(unpaid.ID)
	noToken.PaymentMethod = constants.PaymentMethodCreditCard
	_, err = f.payments.ProcessPayment(ctx, guest, noToken)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, int64(1), f.count(t, &models.Payment{}))
}

func TestUpdatePaymentStatus_SideEffects(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		paymentStatus string
		wantBooking   string
		wantReason    string
	}{
		{"completed confirms pending", constants.PaymentMethodCash, constants.PaymentStatusCompleted, constants.BookingStatusConfirmed, ""},
		{"failed cancels", constants.PaymentMethodCash, constants.PaymentStatusFailed, constants.BookingStatusCancelled, "Payment failed"},
		{"refunded cancels confirmed", constants.PaymentMethodCreditCard, constants.PaymentStatusRefunded, constants.BookingStatusCancelled, "Payment refunded"},
		{"pending reopens confirmed", constants.PaymentMethodCreditCard, constants.PaymentStatusPending, constants.BookingStatusPending, ""},
		{"pending leaves pending", constants.PaymentMethodCash, constants.PaymentStatusPending, constants.BookingStatusPending, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			b := f.book(t, guest, tt.method, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

			payment, err := f.payments.UpdateStatus(ctx, admin, b.Payment.ID, dto.UpdatePaymentStatusRequest{PaymentStatus: tt.paymentStatus})

			require.NoError(t, err)
			assert.Equal(t, tt.paymentStatus, payment.PaymentStatus)
			reloaded, err := f.repo.GetBooking(ctx, b.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBooking, reloaded.BookingStatus)
			assert.Equal(t, tt.paymentStatus, reloaded.Payment.PaymentStatus)
			if tt.wantReason != "" {
				require.NotNil(t, reloaded.CancellationReason)
				assert.Equal(t, tt.wantReason, *reloaded.CancellationReason)
			}
		})
	}
}

func TestUpdatePaymentStatus_TerminalBookingUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, guest, constants.PaymentMethodCreditCard, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	_, err := f.bookings.Complete(ctx, admin, b.ID)
	require.NoError(t, err)

	_, err = f.payments.UpdateStatus(ctx, admin, b.Payment.ID, dto.UpdatePaymentStatusRequest{PaymentStatus: constants.PaymentStatusRefunded})

	require.NoError(t, err)
	reloaded, _ := f.repo.GetBooking(ctx, b.ID)
	assert.Equal(t, constants.BookingStatusCompleted, reloaded.BookingStatus)
}

func TestUpdatePaymentStatus_RequiresManage(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

	_, err := f.payments.UpdateStatus(context.Background(), guest, b.Payment.ID, dto.UpdatePaymentStatusRequest{PaymentStatus: constants.PaymentStatusCompleted})

	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
}

func TestListPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	f.book(t, other, constants.PaymentMethodCreditCard, "2030-06-10", "2030-06-12", f.roomIDs(1)...)

	all, page, err := f.payments.List(ctx, admin, dto.PaymentListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), page.Total)

	completed, _, err := f.payments.List(ctx, admin, dto.PaymentListQuery{PaymentStatus: constants.PaymentStatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, constants.PaymentMethodCreditCard, completed[0].MethodPayment)

	today, _, err := f.payments.List(ctx, admin, dto.PaymentListQuery{FromDate: "2030-06-01", ToDate: "2030-06-01"})
	require.NoError(t, err)
	assert.Len(t, today, 2)

	_, _, err = f.payments.List(ctx, guest, dto.PaymentListQuery{})
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
}

func TestPaymentMethods(t *testing.T) {
	f := newFixture(t)

	methods := f.payments.Methods()

	require.Len(t, methods, 3)
	assert.Equal(t, constants.PaymentMethodCash, methods[2].ID)
	assert.False(t, methods[2].RequiresAdditionalInfo)
}
