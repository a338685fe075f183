package services

import (
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/utils"
)

// CancellationPolicy decides whether a booking may still be cancelled.
type CancellationPolicy struct {
	window   time.Duration
	location *time.Location
}

func NewCancellationPolicy(window time.Duration, loc *time.Location) *CancellationPolicy {
	if window <= 0 {
		window = constants.NoCancelWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	return &CancellationPolicy{window: window, location: loc}
}

// CheckInInstant is midnight of the check-in date in the hotel timezone.
func (p *CancellationPolicy) CheckInInstant(checkInDate time.Time) time.Time {
	return utils.StartOfDayIn(checkInDate, p.location)
}

// HoursUntil is the whole hours left before check-in, a partial hour counting as one.
func (p *CancellationPolicy) HoursUntil(checkInDate, now time.Time) int {
	remaining := p.CheckInInstant(checkInDate).Sub(now)
	if remaining <= 0 {
		return 0
	}
	hours := int(remaining / time.Hour)
	if remaining%time.Hour > 0 {
		hours++
	}
	return hours
}

// IsWithinNoCancelWindow reports whether check-in is still ahead but closer
// than the window. A check-in already in the past is never inside the window.
func (p *CancellationPolicy) IsWithinNoCancelWindow(checkInDate, now time.Time) bool {
	checkIn := p.CheckInInstant(checkInDate)
	if !checkIn.After(now) {
		return false
	}
	return checkIn.Sub(now) < p.window
}

// Check returns a ConflictError carrying the policy text when now is inside the window.
func (p *CancellationPolicy) Check(checkInDate, now time.Time) error {
	if !p.IsWithinNoCancelWindow(checkInDate, now) {
		return nil
	}
	return apperrors.Conflict(apperrors.ErrCodeCancellationWindow, constants.CancellationBlockedMsg).
		WithData("cancellation_policy", constants.CancellationPolicyText)
}

func (p *CancellationPolicy) Describe() dto.CancellationPolicyResponse {
	return dto.CancellationPolicyResponse{
		Policy: constants.CancellationPolicySummary,
		Terms:  constants.CancellationTerms,
	}
}
