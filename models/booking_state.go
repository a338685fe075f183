package models

import (
	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
)

// BookingState holds the transitions allowed from one booking status.
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking, reason *string) error
	Complete(booking *Booking) error
	MarkPending(booking *Booking) error
}

// State errors are built per call so callers may attach data to them.
func terminalError(message string) *apperrors.AppError {
	return apperrors.Conflict(apperrors.ErrCodeBookingTerminal, message)
}

func transitionError(message string) *apperrors.AppError {
	return apperrors.Conflict(apperrors.ErrCodeInvalidTransition, message)
}

func errAlreadyCancelled() error { return terminalError("Booking is already cancelled") }
func errCancelCompleted() error  { return terminalError("Cannot cancel a completed booking") }
func errAlreadyCompleted() error { return terminalError("Booking is already completed") }
func errCompleteCanceled() error { return terminalError("Cannot complete a cancelled booking") }
func errNotPending() error       { return transitionError("Booking room is not in pending status") }
func errNotConfirmed() error     { return transitionError("Booking is not confirmed") }

type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking, reason *string) error {
	booking.BookingStatus = constants.BookingStatusCancelled
	booking.CancellationReason = reason
	return nil
}

// Complete is the administrative fast path that skips confirmation.
func (s *PendingState) Complete(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusCompleted
	return nil
}

func (s *PendingState) MarkPending(booking *Booking) error {
	return errNotConfirmed()
}

type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errNotPending()
}

func (s *ConfirmedState) Cancel(booking *Booking, reason *string) error {
	booking.BookingStatus = constants.BookingStatusCancelled
	booking.CancellationReason = reason
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) MarkPending(booking *Booking) error {
	booking.BookingStatus = constants.BookingStatusPending
	return nil
}

type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errNotPending()
}

func (s *CompletedState) Cancel(booking *Booking, reason *string) error {
	return errCancelCompleted()
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errAlreadyCompleted()
}

func (s *CompletedState) MarkPending(booking *Booking) error {
	return errAlreadyCompleted()
}

type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errNotPending()
}

func (s *CancelledState) Cancel(booking *Booking, reason *string) error {
	return errAlreadyCancelled()
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errCompleteCanceled()
}

func (s *CancelledState) MarkPending(booking *Booking) error {
	return errAlreadyCancelled()
}

// GetBookingState returns the state for a booking status.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
