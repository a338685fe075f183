package services

import (
	"context"
	"testing"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_Check(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	availability := NewAvailabilityService(f.repo)
	f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

	tests := []struct {
		name      string
		rooms     []uint
		in, out   string
		available bool
		taken     []string
	}{
		{"overlapping stay", f.roomIDs(0, 1), "2030-06-11", "2030-06-14", false, []string{"101"}},
		{"other room", f.roomIDs(1), "2030-06-10", "2030-06-12", true, nil},
		{"later stay", f.roomIDs(0), "2030-06-15", "2030-06-16", true, nil},
		{"duplicated ids", f.roomIDs(0, 0), "2030-06-09", "2030-06-11", false, []string{"101"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := availability.Check(ctx, dto.AvailabilityQuery{RoomIDs: tt.rooms, CheckIn: tt.in, CheckOut: tt.out})

			require.NoError(t, err)
			assert.Equal(t, tt.available, res.Available)
			require.NotNil(t, res.UnavailableRooms)
			numbers := []string{}
			for _, r := range res.UnavailableRooms {
				numbers = append(numbers, r.RoomNumber)
			}
			if tt.taken == nil {
				assert.Empty(t, numbers)
			} else {
				assert.Equal(t, tt.taken, numbers)
			}
		})
	}
}

func TestAvailabilityService_Validation(t *testing.T) {
	f := newFixture(t)
	availability := NewAvailabilityService(f.repo)

	_, err := availability.Check(context.Background(), dto.AvailabilityQuery{RoomIDs: f.roomIDs(0), CheckIn: "2030-06-12", CheckOut: "2030-06-10"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = availability.Check(context.Background(), dto.AvailabilityQuery{CheckIn: "2030-06-10", CheckOut: "2030-06-12"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
