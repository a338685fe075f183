package services

import (
	"context"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/utils"
	"hotel-booking/validator"
)

// RoomOccupancy finds rooms held by overlapping bookings.
type RoomOccupancy interface {
	FindUnavailableRooms(ctx context.Context, roomIDs []uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.UnavailableRoom, error)
}

// FindUnavailableRooms returns the rooms among roomIDs that overlap [checkIn, checkOut].
// Duplicated ids are checked once.
func FindUnavailableRooms(ctx context.Context, store RoomOccupancy, roomIDs []uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.UnavailableRoom, error) {
	rooms, err := store.FindUnavailableRooms(ctx, validator.UniqueIDs(roomIDs), checkIn, checkOut, excludeBookingID)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.UnavailableRoom{}
	}
	return rooms, nil
}

// EnsureAvailable fails with a ConflictError listing the taken room numbers.
func EnsureAvailable(ctx context.Context, store RoomOccupancy, roomIDs []uint, checkIn, checkOut time.Time, excludeBookingID uint) error {
	rooms, err := FindUnavailableRooms(ctx, store, roomIDs, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		return nil
	}
	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.RoomNumber)
	}
	return apperrors.Conflict(apperrors.ErrCodeRoomUnavailable, constants.RoomsUnavailableMsg).
		WithData("unavailable_rooms", numbers)
}

// AvailabilityService answers the public availability query.
type AvailabilityService struct {
	repo *repository.Repository
}

func NewAvailabilityService(repo *repository.Repository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

func (s *AvailabilityService) Check(ctx context.Context, q dto.AvailabilityQuery) (*dto.AvailabilityResponse, error) {
	if err := validator.Struct(q); err != nil {
		return nil, err
	}
	checkIn, err := utils.ParseDate(q.CheckIn)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid check in date", err)
	}
	checkOut, err := utils.ParseDate(q.CheckOut)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid check out date", err)
	}
	if err := validator.ValidateStay(checkIn, checkOut, time.Time{}); err != nil {
		return nil, err
	}

	rooms, err := FindUnavailableRooms(ctx, s.repo, q.RoomIDs, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	return &dto.AvailabilityResponse{Available: len(rooms) == 0, UnavailableRooms: rooms}, nil
}
