package validator

import (
	"testing"
	"time"

	"hotel-booking/dto"
	apperrors "hotel-booking/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestValidateStay(t *testing.T) {
	today := day("2030-01-10")

	assert.NoError(t, ValidateStay(day("2030-01-10"), day("2030-01-11"), today))
	assert.Error(t, ValidateStay(day("2030-01-09"), day("2030-01-11"), today))
	assert.Error(t, ValidateStay(day("2030-01-12"), day("2030-01-12"), today))
	assert.Error(t, ValidateStay(day("2030-01-12"), day("2030-01-11"), today))
	assert.NoError(t, ValidateStay(day("2020-01-12"), day("2020-01-13"), time.Time{}))
}

func TestStructReportsFieldErrors(t *testing.T) {
	amount := decimal.NewFromInt(10)
	req := dto.CreateBookingRequest{
		CheckInDate:   "10/01/2030",
		CheckOutDate:  "2030-01-12",
		RoomIDs:       []uint{1},
		PaymentMethod: "bitcoin",
		TotalPayment:  &amount,
	}

	err := Struct(req)

	appErr := apperrors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, apperrors.KindValidation, appErr.Kind)
		fields := appErr.Data["errors"].(map[string]string)
		assert.Contains(t, fields, "checkInDate")
		assert.Contains(t, fields, "paymentMethod")
	}
}

func TestStructAcceptsValidRequest(t *testing.T) {
	amount := decimal.NewFromInt(10)
	req := dto.CreateBookingRequest{
		CheckInDate:   "2030-01-10",
		CheckOutDate:  "2030-01-12",
		RoomIDs:       []uint{1, 2},
		PaymentMethod: "cash",
		TotalPayment:  &amount,
	}

	assert.NoError(t, Struct(req))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("total payment", decimal.Zero))
	assert.Error(t, ValidateAmount("total payment", decimal.NewFromFloat(-0.01)))
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, UniqueIDs([]uint{3, 1, 3, 2, 1}))
}
