package services

import (
	"context"
	"testing"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedCatalog(t *testing.T) (models.ServiceType, models.Service) {
	t.Helper()
	st := models.ServiceType{Name: "Dining"}
	require.NoError(t, f.db.Create(&st).Error)
	svc := models.Service{ServiceTypeID: st.ID, Name: "Breakfast", Price: decimal.NewFromInt(15), Available: true}
	require.NoError(t, f.db.Create(&svc).Error)
	return st, svc
}

func addOnRequest(bookingID uint, st models.ServiceType, svc models.Service) dto.CreateBookingServiceRequest {
	return dto.CreateBookingServiceRequest{
		BookingID:     bookingID,
		ServiceID:     svc.ID,
		ServiceTypeID: st.ID,
		Quantity:      2,
		Price:         amount(30),
	}
}

func TestAddOn_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st, svc := f.seedCatalog(t)
	b := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

	item, err := f.addons.Create(ctx, guest, addOnRequest(b.ID, st, svc))
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Service)
	assert.Equal(t, "Breakfast", item.Service.Name)

	got, err := f.addons.Get(ctx, guest, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	qty := 3
	updated, err := f.addons.Update(ctx, guest, item.ID, dto.UpdateBookingServiceRequest{Quantity: &qty, Price: amount(45)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.True(t, decimal.NewFromInt(45).Equal(updated.Price))

	byBooking, err := f.addons.ListByBooking(ctx, guest, b.ID)
	require.NoError(t, err)
	assert.Len(t, byBooking, 1)

	booking, err := f.bookings.Get(ctx, guest, b.ID)
	require.NoError(t, err)
	assert.Len(t, booking.Services, 1)

	require.NoError(t, f.addons.Delete(ctx, guest, item.ID))
	_, err = f.addons.Get(ctx, guest, item.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAddOn_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st, svc := f.seedCatalog(t)
	otherType := models.ServiceType{Name: "Spa"}
	require.NoError(t, f.db.Create(&otherType).Error)
	b := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

	zeroQty := addOnRequest(b.ID, st, svc)
	zeroQty.Quantity = 0
	_, err := f.addons.Create(ctx, guest, zeroQty)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	negative := addOnRequest(b.ID, st, svc)
	negative.Price = amount(-5)
	_, err = f.addons.Create(ctx, guest, negative)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	mismatch := addOnRequest(b.ID, otherType, svc)
	_, err = f.addons.Create(ctx, guest, mismatch)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	missingService := addOnRequest(b.ID, st, svc)
	missingService.ServiceID = 999
	_, err = f.addons.Create(ctx, guest, missingService)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	missingBooking := addOnRequest(999, st, svc)
	_, err = f.addons.Create(ctx, guest, missingBooking)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAddOn_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st, svc := f.seedCatalog(t)
	b := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	item, err := f.addons.Create(ctx, guest, addOnRequest(b.ID, st, svc))
	require.NoError(t, err)

	_, err = f.addons.Create(ctx, other, addOnRequest(b.ID, st, svc))
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	_, err = f.addons.Get(ctx, other, item.ID)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(f.addons.Delete(ctx, other, item.ID)))

	adminItem, err := f.addons.Create(ctx, admin, addOnRequest(b.ID, st, svc))
	require.NoError(t, err)
	assert.Equal(t, b.ID, adminItem.BookingID)
}

func TestAddOn_ListIsRoleScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st, svc := f.seedCatalog(t)
	mine := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	theirs := f.book(t, other, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(1)...)
	_, err := f.addons.Create(ctx, guest, addOnRequest(mine.ID, st, svc))
	require.NoError(t, err)
	_, err = f.addons.Create(ctx, other, addOnRequest(theirs.ID, st, svc))
	require.NoError(t, err)

	guestView, err := f.addons.List(ctx, guest)
	require.NoError(t, err)
	require.Len(t, guestView, 1)
	assert.Equal(t, mine.ID, guestView[0].BookingID)

	adminView, err := f.addons.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, adminView, 2)
}

func TestAddOn_CancelledBookingIsFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st, svc := f.seedCatalog(t)
	b := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	item, err := f.addons.Create(ctx, guest, addOnRequest(b.ID, st, svc))
	require.NoError(t, err)
	_, err = f.bookings.Cancel(ctx, guest, b.ID, nil)
	require.NoError(t, err)

	_, err = f.addons.Create(ctx, guest, addOnRequest(b.ID, st, svc))
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	qty := 5
	_, err = f.addons.Update(ctx, guest, item.ID, dto.UpdateBookingServiceRequest{Quantity: &qty})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(f.addons.Delete(ctx, guest, item.ID)))

	got, err := f.addons.Get(ctx, guest, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}

func TestAddOn_CompletedBookingStillEditable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st, svc := f.seedCatalog(t)
	b := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	_, err := f.bookings.Complete(ctx, admin, b.ID)
	require.NoError(t, err)

	_, err = f.addons.Create(ctx, guest, addOnRequest(b.ID, st, svc))

	assert.NoError(t, err)
}
