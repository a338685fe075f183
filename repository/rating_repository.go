package repository

import (
	"context"

	apperrors "hotel-booking/errors"
	"hotel-booking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) CreateRating(ctx context.Context, rating *models.Rating) error {
	return r.conn(ctx).Omit(clause.Associations).Create(rating).Error
}

func (r *Repository) SaveRating(ctx context.Context, rating *models.Rating) error {
	return r.conn(ctx).Omit(clause.Associations).Save(rating).Error
}

func (r *Repository) DeleteRating(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&models.Rating{}, id).Error
}

func (r *Repository) GetRating(ctx context.Context, id uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.conn(ctx).First(&rating, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeRatingNotFound, "Rating not found")
	}
	return &rating, nil
}

func (r *Repository) RatingExists(ctx context.Context, guestID, bookingID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.Rating{}).
		Where("guest_id = ? AND booking_id = ?", guestID, bookingID).
		Count(&count).Error
	return count > 0, err
}

// ListRoomRatings returns ratings of bookings that included roomID, newest first.
func (r *Repository) ListRoomRatings(ctx context.Context, roomID uint, page Page) ([]models.Rating, int64, error) {
	bookingIDs := r.conn(ctx).Model(&models.BookingRoom{}).Select("booking_id").Where("room_id = ?", roomID)
	q := r.conn(ctx).Model(&models.Rating{}).
		Where("booking_id IN (?)", bookingIDs).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ratings []models.Rating
	err := page.apply(q.Preload("Guest")).
		Order("created_at DESC").Order("id DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}
