package services

import (
	"testing"
	"time"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"

	"github.com/stretchr/testify/assert"
)

func TestCancellationWindowBoundaries(t *testing.T) {
	policy := NewCancellationPolicy(constants.NoCancelWindow, time.UTC)
	checkIn := time.Date(2030, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		blocked bool
	}{
		{"exactly 24h before", checkIn.Add(-24 * time.Hour), false},
		{"23h59m before", checkIn.Add(-(23*time.Hour + 59*time.Minute)), true},
		{"one second inside", checkIn.Add(-(24*time.Hour - time.Second)), true},
		{"three days before", checkIn.Add(-72 * time.Hour), false},
		{"one hour before", checkIn.Add(-time.Hour), true},
		{"at check-in", checkIn, false},
		{"after check-in", checkIn.Add(5 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blocked, policy.IsWithinNoCancelWindow(checkIn, tt.now))
			err := policy.Check(checkIn, tt.now)
			if tt.blocked {
				appErr := apperrors.GetAppError(err)
				if assert.NotNil(t, appErr) {
					assert.Equal(t, apperrors.KindConflict, appErr.Kind)
					assert.Equal(t, constants.CancellationBlockedMsg, appErr.Message)
					assert.Equal(t, constants.CancellationPolicyText, appErr.Data["cancellation_policy"])
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancellationWindowUsesHotelTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	policy := NewCancellationPolicy(constants.NoCancelWindow, loc)
	checkInDate := time.Date(2030, 3, 15, 0, 0, 0, 0, time.UTC)

	// midnight on the 15th in UTC+7 is 17:00 UTC on the 14th
	now := time.Date(2030, 3, 13, 17, 0, 0, 0, time.UTC)
	assert.False(t, policy.IsWithinNoCancelWindow(checkInDate, now))
	assert.True(t, policy.IsWithinNoCancelWindow(checkInDate, now.Add(time.Minute)))
}

func TestHoursUntilRoundsPartialHourUp(t *testing.T) {
	policy := NewCancellationPolicy(0, nil)
	checkIn := time.Date(2030, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, policy.HoursUntil(checkIn, checkIn.Add(-24*time.Hour)))
	assert.Equal(t, 24, policy.HoursUntil(checkIn, checkIn.Add(-(23*time.Hour+59*time.Minute))))
	assert.Equal(t, 1, policy.HoursUntil(checkIn, checkIn.Add(-time.Minute)))
	assert.Equal(t, 0, policy.HoursUntil(checkIn, checkIn.Add(time.Hour)))
}

func TestDescribePolicy(t *testing.T) {
	got := NewCancellationPolicy(0, nil).Describe()
	assert.Equal(t, constants.CancellationPolicySummary, got.Policy)
	assert.Len(t, got.Terms, 5)
}
