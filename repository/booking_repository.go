package repository

import (
	"context"
	"time"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingFilter narrows ListBookings. Zero values are ignored.
type BookingFilter struct {
	UserID   uint
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Page
}

// FindUnavailableRooms returns the rooms among roomIDs held by a non-cancelled
// booking whose stay overlaps [checkIn, checkOut], boundaries included.
// A non-zero excludeBookingID ignores that booking.
func (r *Repository) FindUnavailableRooms(ctx context.Context, roomIDs []uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.UnavailableRoom, error) {
	var rooms []models.UnavailableRoom
	if len(roomIDs) == 0 {
		return rooms, nil
	}

	q := r.conn(ctx).Table("rooms").
		Select("DISTINCT rooms.id AS room_id, rooms.room_number AS room_number").
		Joins("JOIN booking_rooms ON booking_rooms.room_id = rooms.id").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("rooms.id IN ?", roomIDs).
		Where("bookings.booking_status <> ?", constants.BookingStatusCancelled).
		Where("bookings.check_in_date <= ? AND bookings.check_out_date >= ?", utils.ToDate(checkOut), utils.ToDate(checkIn))
	if excludeBookingID != 0 {
		q = q.Where("bookings.id <> ?", excludeBookingID)
	}

	if err := q.Order("rooms.room_number").Scan(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *Repository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return r.conn(ctx).Omit(clause.Associations).Create(booking).Error
}

func (r *Repository) AddBookingRooms(ctx context.Context, bookingID uint, roomIDs []uint) error {
	if len(roomIDs) == 0 {
		return nil
	}
	rows := make([]models.BookingRoom, 0, len(roomIDs))
	for _, id := range roomIDs {
		rows = append(rows, models.BookingRoom{BookingID: bookingID, RoomID: id})
	}
	return r.conn(ctx).Omit(clause.Associations).Create(&rows).Error
}

// ReplaceBookingRooms makes the booking's room set equal to roomIDs,
// deleting rooms no longer wanted and inserting the new ones.
func (r *Repository) ReplaceBookingRooms(ctx context.Context, bookingID uint, roomIDs []uint) error {
	var current []uint
	if err := r.conn(ctx).Model(&models.BookingRoom{}).
		Where("booking_id = ?", bookingID).
		Pluck("room_id", &current).Error; err != nil {
		return err
	}

	target := make(map[uint]bool, len(roomIDs))
	for _, id := range roomIDs {
		target[id] = true
	}
	existing := make(map[uint]bool, len(current))
	var removed []uint
	for _, id := range current {
		existing[id] = true
		if !target[id] {
			removed = append(removed, id)
		}
	}
	var added []uint
	for _, id := range roomIDs {
		if !existing[id] {
			added = append(added, id)
			existing[id] = true
		}
	}

	if len(removed) > 0 {
		if err := r.conn(ctx).
			Where("booking_id = ? AND room_id IN ?", bookingID, removed).
			Delete(&models.BookingRoom{}).Error; err != nil {
			return err
		}
	}
	return r.AddBookingRooms(ctx, bookingID, added)
}

func preloadBooking(q *gorm.DB) *gorm.DB {
	return q.Preload("BookingRooms.Room.RoomType").
		Preload("Payment").
		Preload("Services.Service")
}

// GetBooking loads a booking with rooms, payment and add-on services.
func (r *Repository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := preloadBooking(r.conn(ctx)).First(&booking, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeBookingNotFound, "Booking not found")
	}
	return &booking, nil
}

// LockBooking loads a booking row FOR UPDATE together with its room links.
func (r *Repository) LockBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeBookingNotFound, "Booking not found")
	}
	if err := r.conn(ctx).Where("booking_id = ?", id).Order("room_id").Find(&booking.BookingRooms).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *Repository) UpdateBookingDates(ctx context.Context, id uint, checkIn, checkOut time.Time) error {
	return r.conn(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"check_in_date":  utils.ToDate(checkIn),
		"check_out_date": utils.ToDate(checkOut),
		"updated_at":     time.Now(),
	}).Error
}

// UpdateBookingStatus persists booking_status and cancellation_reason.
func (r *Repository) UpdateBookingStatus(ctx context.Context, booking *models.Booking) error {
	return r.conn(ctx).Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
		"booking_status":      booking.BookingStatus,
		"cancellation_reason": booking.CancellationReason,
		"updated_at":          time.Now(),
	}).Error
}

func (r *Repository) ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, int64, error) {
	q := r.conn(ctx).Model(&models.Booking{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("booking_status = ?", f.Status)
	}
	if f.FromDate != nil {
		q = q.Where("check_in_date >= ?", utils.ToDate(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("check_out_date <= ?", utils.ToDate(*f.ToDate))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := f.Page.apply(preloadBooking(q)).
		Order("created_at DESC").Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *Repository) AddHistory(ctx context.Context, h *models.BookingHistory) error {
	return r.conn(ctx).Create(h).Error
}

func (r *Repository) ListHistory(ctx context.Context, bookingID uint) ([]models.BookingHistory, error) {
	var rows []models.BookingHistory
	err := r.conn(ctx).Where("booking_id = ?", bookingID).Order("id").Find(&rows).Error
	return rows, err
}

// Occupancy counts arrivals, departures and in-house bookings on day.
func (r *Repository) Occupancy(ctx context.Context, day time.Time) (*models.OccupancyReport, error) {
	d := utils.ToDate(day)
	active := []string{constants.BookingStatusPending, constants.BookingStatusConfirmed, constants.BookingStatusCompleted}
	report := &models.OccupancyReport{Date: utils.FormatDate(day)}

	base := func() *gorm.DB {
		return r.conn(ctx).Model(&models.Booking{}).Where("booking_status IN ?", active)
	}
	if err := base().Where("check_in_date = ?", d).Count(&report.Arrivals).Error; err != nil {
		return nil, err
	}
	if err := base().Where("check_out_date = ?", d).Count(&report.Departures).Error; err != nil {
		return nil, err
	}
	if err := base().Where("check_in_date <= ? AND check_out_date > ?", d, d).Count(&report.InHouse).Error; err != nil {
		return nil, err
	}
	return report, nil
}
