package notification

import (
	"context"
	"testing"
	"time"

	"hotel-booking/constants"
	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
)

func TestEventBuilder(t *testing.T) {
	booking := &models.Booking{
		ID:            5,
		UserID:        9,
		BookingStatus: constants.BookingStatusConfirmed,
		BookingRooms:  []models.BookingRoom{{RoomID: 1}, {RoomID: 4}},
	}
	at := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	event := NewEventBuilder(constants.EventBookingConfirmed, booking).At(at).Build()

	assert.Equal(t, BookingEvent{
		Type:       constants.EventBookingConfirmed,
		BookingID:  5,
		UserID:     9,
		Status:     constants.BookingStatusConfirmed,
		RoomIDs:    []uint{1, 4},
		OccurredAt: at,
	}, event)
}

func TestRecordingPublisher(t *testing.T) {
	rec := &RecordingPublisher{}
	_ = rec.Publish(context.Background(), BookingEvent{Type: constants.EventBookingCreated})
	_ = rec.Publish(context.Background(), BookingEvent{Type: constants.EventBookingCancelled})

	assert.Equal(t, []string{constants.EventBookingCreated, constants.EventBookingCancelled}, rec.Types())
}
