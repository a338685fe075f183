package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	folder string
	body   string
	err    error
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	u.folder, u.body = folder, string(b)
	return "https://images.test/" + folder + "/thumb.png", nil
}

func boolPtr(b bool) *bool {
	return &b
}

func TestRoomService_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cache := newMemoryCache()
	rooms := NewRoomService(RoomServiceOptions{Repo: f.repo, Cache: cache})

	room, err := rooms.Create(ctx, admin, dto.CreateRoomRequest{RoomNumber: " 201 ", RoomTypeID: f.rooms[0].RoomTypeID})
	require.NoError(t, err)
	assert.Equal(t, "201", room.RoomNumber)
	assert.Equal(t, constants.DefaultRoomImage, room.Thumbnail)
	assert.True(t, room.IsActive)
	require.NotNil(t, room.RoomType)

	_, err = rooms.Create(ctx, admin, dto.CreateRoomRequest{RoomNumber: "101", RoomTypeID: f.rooms[0].RoomTypeID})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDuplicate, apperrors.GetAppError(err).Code)

	_, err = rooms.Create(ctx, admin, dto.CreateRoomRequest{RoomNumber: "202", RoomTypeID: 999})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = rooms.Create(ctx, guest, dto.CreateRoomRequest{RoomNumber: "203", RoomTypeID: f.rooms[0].RoomTypeID})
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	got, err := rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "201", got.RoomNumber)
	assert.True(t, cache.has(roomCacheKey(room.ID)))

	updated, err := rooms.Update(ctx, admin, room.ID, dto.UpdateRoomRequest{Description: strPtr("Sea view"), IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Sea view", updated.Description)
	assert.False(t, updated.IsActive)
	assert.False(t, cache.has(roomCacheKey(room.ID)))

	_, err = rooms.Update(ctx, admin, room.ID, dto.UpdateRoomRequest{RoomNumber: strPtr("102")})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	require.NoError(t, rooms.Delete(ctx, admin, room.ID))
	_, err = rooms.Get(ctx, room.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRoomService_DeleteBookedRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rooms := NewRoomService(RoomServiceOptions{Repo: f.repo})
	f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

	err := rooms.Delete(ctx, admin, f.rooms[0].ID)

	require.Error(t, err)
	assert.Equal(t, "Cannot delete a room that has bookings. Deactivate it instead", apperrors.GetAppError(err).Message)
	assert.Equal(t, int64(3), f.count(t, &models.Room{}))
}

func TestRoomService_ListAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rooms := NewRoomService(RoomServiceOptions{Repo: f.repo})
	f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)
	_, err := rooms.Update(ctx, admin, f.rooms[2].ID, dto.UpdateRoomRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	all, page, err := rooms.List(ctx, dto.RoomListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), page.Total)

	free, _, err := rooms.List(ctx, dto.RoomListQuery{CheckIn: "2030-06-11", CheckOut: "2030-06-13"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "102", free[0].RoomNumber)

	later, _, err := rooms.List(ctx, dto.RoomListQuery{CheckIn: "2030-06-20", CheckOut: "2030-06-22"})
	require.NoError(t, err)
	assert.Len(t, later, 2)

	_, _, err = rooms.List(ctx, dto.RoomListQuery{CheckIn: "2030-06-20"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, _, err = rooms.List(ctx, dto.RoomListQuery{CheckIn: "2030-06-22", CheckOut: "2030-06-20"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	cheap, _, err := rooms.List(ctx, dto.RoomListQuery{MaxPrice: "100"})
	require.NoError(t, err)
	assert.Empty(t, cheap)

	search, _, err := rooms.List(ctx, dto.RoomListQuery{Search: "102"})
	require.NoError(t, err)
	assert.Len(t, search, 1)
}

func TestRoomService_UploadThumbnail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uploader := &fakeUploader{}
	rooms := NewRoomService(RoomServiceOptions{Repo: f.repo, Uploader: uploader})

	room, err := rooms.UploadThumbnail(ctx, admin, f.rooms[0].ID, strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://images.test/rooms/thumb.png", room.Thumbnail)
	assert.Equal(t, "rooms", uploader.folder)
	assert.Equal(t, "png-bytes", uploader.body)

	uploader.err = errors.New("cloud down")
	_, err = rooms.UploadThumbnail(ctx, admin, f.rooms[0].ID, strings.NewReader("png-bytes"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUploadFailed, apperrors.GetAppError(err).Code)

	disabled := NewRoomService(RoomServiceOptions{Repo: f.repo})
	_, err = disabled.UploadThumbnail(ctx, admin, f.rooms[0].ID, strings.NewReader("x"))
	assert.Error(t, err)

	_, err = rooms.UploadThumbnail(ctx, guest, f.rooms[0].ID, strings.NewReader("x"))
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
}

func TestRoomService_RoomTypes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rooms := NewRoomService(RoomServiceOptions{Repo: f.repo})
	price := decimal.NewFromInt(200)

	suite, err := rooms.CreateRoomType(ctx, admin, dto.RoomTypeRequest{Name: "Suite", Price: &price, Capacity: 4})
	require.NoError(t, err)

	negative := decimal.NewFromInt(-1)
	_, err = rooms.CreateRoomType(ctx, admin, dto.RoomTypeRequest{Name: "Broken", Price: &negative, Capacity: 1})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	price = decimal.NewFromInt(250)
	updated, err := rooms.UpdateRoomType(ctx, admin, suite.ID, dto.RoomTypeRequest{Name: "Suite", Price: &price, Capacity: 4})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))

	types, err := rooms.ListRoomTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	err = rooms.DeleteRoomType(ctx, admin, f.rooms[0].RoomTypeID)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	require.NoError(t, rooms.DeleteRoomType(ctx, admin, suite.ID))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(rooms.DeleteRoomType(ctx, admin, suite.ID)))
}

func TestRoomService_ChangesDropBookingDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cache := newMemoryCache()
	rooms := NewRoomService(RoomServiceOptions{Repo: f.repo, Cache: cache})
	booking := f.book(t, guest, constants.PaymentMethodCash, "2030-06-10", "2030-06-12", f.roomIDs(0)...)

	require.NoError(t, cache.Set(ctx, bookingCacheKey(booking.ID), booking, time.Minute))
	_, err := rooms.Update(ctx, admin, f.rooms[0].ID, dto.UpdateRoomRequest{Description: strPtr("Renovated")})
	require.NoError(t, err)
	assert.False(t, cache.has(bookingCacheKey(booking.ID)))

	require.NoError(t, cache.Set(ctx, bookingCacheKey(booking.ID), booking, time.Minute))
	price := decimal.NewFromInt(150)
	_, err = rooms.UpdateRoomType(ctx, admin, f.rooms[0].RoomTypeID, dto.RoomTypeRequest{Name: "Deluxe", Price: &price, Capacity: 2})
	require.NoError(t, err)
	assert.False(t, cache.has(bookingCacheKey(booking.ID)))
}
