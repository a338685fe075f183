package repository

import (
	"context"
	"errors"
	"time"

	apperrors "hotel-booking/errors"
	"hotel-booking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentFilter struct {
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Page
}

func (r *Repository) CreatePayment(ctx context.Context, p *models.Payment) error {
	return r.conn(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *Repository) SavePayment(ctx context.Context, p *models.Payment) error {
	return r.conn(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *Repository) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodePaymentNotFound, "Payment not found")
	}
	return &p, nil
}

// FindPaymentByBooking returns nil without error when the booking has no payment.
func (r *Repository) FindPaymentByBooking(ctx context.Context, bookingID uint) (*models.Payment, error) {
	var p models.Payment
	err := r.conn(ctx).Where("booking_id = ?", bookingID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, int64, error) {
	q := r.conn(ctx).Model(&models.Payment{})
	if f.Status != "" {
		q = q.Where("payment_status = ?", f.Status)
	}
	if f.FromDate != nil {
		q = q.Where("date_payment >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date_payment < ?", f.ToDate.AddDate(0, 0, 1))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	err := f.Page.apply(q.Preload("Booking")).
		Order("created_at DESC").Order("id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
