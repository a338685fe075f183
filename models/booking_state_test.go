package models

import (
	"errors"
	"testing"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"

	"github.com/stretchr/testify/assert"
)

func TestBookingStateTransitions(t *testing.T) {
	reason := "change of plans"

	tests := []struct {
		name    string
		from    string
		apply   func(BookingState, *Booking) error
		want    string
		wantErr bool
	}{
		{"pending confirm", constants.BookingStatusPending, func(s BookingState, b *Booking) error { return s.Confirm(b) }, constants.BookingStatusConfirmed, false},
		{"pending cancel", constants.BookingStatusPending, func(s BookingState, b *Booking) error { return s.Cancel(b, &reason) }, constants.BookingStatusCancelled, false},
		{"pending complete", constants.BookingStatusPending, func(s BookingState, b *Booking) error { return s.Complete(b) }, constants.BookingStatusCompleted, false},
		{"confirmed confirm", constants.BookingStatusConfirmed, func(s BookingState, b *Booking) error { return s.Confirm(b) }, constants.BookingStatusConfirmed, true},
		{"confirmed cancel", constants.BookingStatusConfirmed, func(s BookingState, b *Booking) error { return s.Cancel(b, nil) }, constants.BookingStatusCancelled, false},
		{"confirmed complete", constants.BookingStatusConfirmed, func(s BookingState, b *Booking) error { return s.Complete(b) }, constants.BookingStatusCompleted, false},
		{"confirmed back to pending", constants.BookingStatusConfirmed, func(s BookingState, b *Booking) error { return s.MarkPending(b) }, constants.BookingStatusPending, false},
		{"cancelled cancel", constants.BookingStatusCancelled, func(s BookingState, b *Booking) error { return s.Cancel(b, nil) }, constants.BookingStatusCancelled, true},
		{"cancelled complete", constants.BookingStatusCancelled, func(s BookingState, b *Booking) error { return s.Complete(b) }, constants.BookingStatusCancelled, true},
		{"cancelled confirm", constants.BookingStatusCancelled, func(s BookingState, b *Booking) error { return s.Confirm(b) }, constants.BookingStatusCancelled, true},
		{"completed complete", constants.BookingStatusCompleted, func(s BookingState, b *Booking) error { return s.Complete(b) }, constants.BookingStatusCompleted, true},
		{"completed cancel", constants.BookingStatusCompleted, func(s BookingState, b *Booking) error { return s.Cancel(b, nil) }, constants.BookingStatusCompleted, true},
		{"completed to pending", constants.BookingStatusCompleted, func(s BookingState, b *Booking) error { return s.MarkPending(b) }, constants.BookingStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{BookingStatus: tt.from}
			err := tt.apply(GetBookingState(tt.from), b)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, b.BookingStatus)
		})
	}
}

func TestCancelStoresReason(t *testing.T) {
	reason := "flight cancelled"
	b := &Booking{BookingStatus: constants.BookingStatusConfirmed}

	err := GetBookingState(b.BookingStatus).Cancel(b, &reason)

	assert.NoError(t, err)
	if assert.NotNil(t, b.CancellationReason) {
		assert.Equal(t, reason, *b.CancellationReason)
	}
}

func TestCancelMessages(t *testing.T) {
	err := GetBookingState(constants.BookingStatusCancelled).Cancel(&Booking{}, nil)
	assert.EqualError(t, err, "[BOOKING_TERMINAL] Booking is already cancelled")

	err = GetBookingState(constants.BookingStatusCompleted).Cancel(&Booking{}, nil)
	assert.EqualError(t, err, "[BOOKING_TERMINAL] Cannot cancel a completed booking")
}

func TestStateErrorsAreNotShared(t *testing.T) {
	state := GetBookingState(constants.BookingStatusCancelled)

	first := state.Cancel(&Booking{}, nil)
	var appErr *apperrors.AppError
	if assert.True(t, errors.As(first, &appErr)) {
		appErr.WithData("booking_id", 7)
	}

	second := state.Cancel(&Booking{}, nil)
	var other *apperrors.AppError
	if assert.True(t, errors.As(second, &other)) {
		assert.NotSame(t, appErr, other)
		assert.Empty(t, other.Data)
	}
}
