package repository

import (
	"context"

	apperrors "hotel-booking/errors"
	"hotel-booking/models"

	"gorm.io/gorm/clause"
)

// AddOnFilter narrows ListBookingServices. UserID scopes to that guest's bookings.
type AddOnFilter struct {
	BookingID uint
	UserID    uint
}

func (r *Repository) CreateBookingService(ctx context.Context, s *models.BookingService) error {
	return r.conn(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *Repository) SaveBookingService(ctx context.Context, s *models.BookingService) error {
	return r.conn(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *Repository) DeleteBookingService(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&models.BookingService{}, id).Error
}

func (r *Repository) GetBookingService(ctx context.Context, id uint) (*models.BookingService, error) {
	var s models.BookingService
	if err := r.conn(ctx).Preload("Service").Preload("ServiceType").First(&s, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeServiceNotFound, "Booking service not found")
	}
	return &s, nil
}

func (r *Repository) ListBookingServices(ctx context.Context, f AddOnFilter) ([]models.BookingService, error) {
	q := r.conn(ctx).Model(&models.BookingService{}).Preload("Service").Preload("ServiceType")
	if f.BookingID != 0 {
		q = q.Where("booking_services.booking_id = ?", f.BookingID)
	}
	if f.UserID != 0 {
		q = q.Joins("JOIN bookings ON bookings.id = booking_services.booking_id").
			Where("bookings.user_id = ?", f.UserID)
	}
	var rows []models.BookingService
	err := q.Order("booking_services.id").Find(&rows).Error
	return rows, err
}

func (r *Repository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.conn(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeServiceNotFound, "Service not found")
	}
	return &s, nil
}

func (r *Repository) GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error) {
	var st models.ServiceType
	if err := r.conn(ctx).First(&st, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeServiceNotFound, "Service type not found")
	}
	return &st, nil
}

func (r *Repository) ListServices(ctx context.Context, serviceTypeID uint) ([]models.Service, error) {
	q := r.conn(ctx).Preload("ServiceType")
	if serviceTypeID != 0 {
		q = q.Where("service_type_id = ?", serviceTypeID)
	}
	var rows []models.Service
	err := q.Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var rows []models.ServiceType
	err := r.conn(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) CreateService(ctx context.Context, s *models.Service) error {
	return r.conn(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *Repository) CreateServiceType(ctx context.Context, st *models.ServiceType) error {
	return r.conn(ctx).Create(st).Error
}
