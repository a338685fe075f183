package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/response"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"
	"hotel-booking/validator"
)

type PaymentService struct {
	repo     *repository.Repository
	payments *PaymentProcessor
	policy   *Policy
	hooks    *lifecycleHooks
}

type PaymentServiceOptions struct {
	Repo      *repository.Repository
	Payments  *PaymentProcessor
	Policy    *Policy
	Cache     Cache
	Publisher notification.Publisher
	Logger    logger.Logger
	Now       func() time.Time
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	if opts.Payments == nil {
		opts.Payments = NewPaymentProcessor(nil, "")
	}
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	return &PaymentService{
		repo:     opts.Repo,
		payments: opts.Payments,
		policy:   opts.Policy,
		hooks:    newLifecycleHooks(opts.Cache, opts.Publisher, opts.Logger, opts.Now, 0),
	}
}

var paymentMethods = []dto.PaymentMethodInfo{
	{ID: constants.PaymentMethodCreditCard, Name: "Credit Card", RequiresAdditionalInfo: true},
	{ID: constants.PaymentMethodPaypal, Name: "PayPal", RequiresAdditionalInfo: true},
	{ID: constants.PaymentMethodCash, Name: "Cash", RequiresAdditionalInfo: false},
}

// Methods lists the accepted payment methods.
func (s *PaymentService) Methods() []dto.PaymentMethodInfo {
	out := make([]dto.PaymentMethodInfo, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// ProcessPayment pays for a booking that has no payment yet. A completed
// charge confirms a pending booking.
func (s *PaymentService) ProcessPayment(ctx context.Context, actor Actor, req dto.ProcessPaymentRequest) (*models.Payment, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount("total payment", *req.TotalPayment); err != nil {
		return nil, err
	}

	var (
		payment   *models.Payment
		booking   *models.Booking
		confirmed bool
	)
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		booking, err = tx.LockBooking(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(actor, ActionPaymentProcess, Owned(booking.UserID)); err != nil {
			return err
		}
		if booking.IsTerminal() {
			return apperrors.Conflict(apperrors.ErrCodeBookingTerminal, "Cannot pay for a cancelled or completed booking")
		}
		existing, err := tx.FindPaymentByBooking(ctx, booking.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict(apperrors.ErrCodeDuplicatePayment, "Booking already has a payment")
		}

		result, err := s.payments.Charge(ctx, req.PaymentMethod, *req.TotalPayment, req.SourceToken, fmt.Sprintf("Booking #%d", booking.ID))
		if err != nil {
			return err
		}
		payment = &models.Payment{
			BookingID:     booking.ID,
			TotalPayment:  *req.TotalPayment,
			MethodPayment: req.PaymentMethod,
			TransactionID: &result.TransactionID,
			PaymentStatus: result.Status,
			ReceiptURL:    result.ReceiptURL,
			DatePayment:   s.hooks.now(),
		}
		if err := tx.CreatePayment(ctx, payment); err != nil {
			return err
		}

		if payment.PaymentStatus != constants.PaymentStatusCompleted || booking.BookingStatus != constants.BookingStatusPending {
			return nil
		}
		if err := models.GetBookingState(booking.BookingStatus).Confirm(booking); err != nil {
			return err
		}
		if err := tx.UpdateBookingStatus(ctx, booking); err != nil {
			return err
		}
		confirmed = true
		return s.hooks.record(ctx, tx, booking, actor, constants.BookingStatusPending, "payment completed")
	})
	if err != nil {
		return nil, apperrors.Transaction("Failed to process payment", err)
	}

	if confirmed {
		s.hooks.committed(ctx, constants.EventBookingConfirmed, booking)
	} else {
		s.hooks.invalidate(ctx, booking.ID)
	}
	return payment, nil
}

// UpdateStatus sets a payment status and moves the booking to match it.
func (s *PaymentService) UpdateStatus(ctx context.Context, actor Actor, id uint, req dto.UpdatePaymentStatusRequest) (*models.Payment, error) {
	if err := s.policy.Authorize(actor, ActionPaymentManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	var (
		payment *models.Payment
		booking *models.Booking
		event   string
	)
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		payment, err = tx.GetPayment(ctx, id)
		if err != nil {
			return err
		}
		booking, err = tx.LockBooking(ctx, payment.BookingID)
		if err != nil {
			return err
		}

		payment.PaymentStatus = req.PaymentStatus
		if err := tx.SavePayment(ctx, payment); err != nil {
			return err
		}

		from := booking.BookingStatus
		event, err = applyPaymentStatus(booking, req.PaymentStatus)
		if err != nil || event == "" {
			return err
		}
		if err := tx.UpdateBookingStatus(ctx, booking); err != nil {
			return err
		}
		return s.hooks.record(ctx, tx, booking, actor, from, "payment "+req.PaymentStatus)
	})
	if err != nil {
		return nil, apperrors.Transaction("Failed to update payment status", err)
	}

	if event != "" {
		s.hooks.committed(ctx, event, booking)
	} else {
		s.hooks.invalidate(ctx, booking.ID)
	}
	payment.Booking = booking
	return payment, nil
}

// applyPaymentStatus moves booking to follow a payment status. It returns the
// event to publish, or "" when the booking is unchanged.
func applyPaymentStatus(booking *models.Booking, paymentStatus string) (string, error) {
	state := models.GetBookingState(booking.BookingStatus)
	switch {
	case paymentStatus == constants.PaymentStatusCompleted && booking.BookingStatus == constants.BookingStatusPending:
		return constants.EventBookingConfirmed, state.Confirm(booking)
	case paymentStatus == constants.PaymentStatusFailed && !booking.IsTerminal():
		reason := "Payment failed"
		return constants.EventBookingCancelled, state.Cancel(booking, &reason)
	case paymentStatus == constants.PaymentStatusRefunded && !booking.IsTerminal():
		reason := "Payment refunded"
		return constants.EventBookingCancelled, state.Cancel(booking, &reason)
	case paymentStatus == constants.PaymentStatusPending && booking.BookingStatus == constants.BookingStatusConfirmed:
		return constants.EventBookingPending, state.MarkPending(booking)
	}
	return "", nil
}

func (s *PaymentService) List(ctx context.Context, actor Actor, q dto.PaymentListQuery) ([]models.Payment, *response.Pagination, error) {
	if err := s.policy.Authorize(actor, ActionPaymentManage, nil); err != nil {
		return nil, nil, err
	}
	if err := validator.Struct(q); err != nil {
		return nil, nil, err
	}
	page := q.PageQuery.Normalize()
	filter := repository.PaymentFilter{
		Status: q.PaymentStatus,
		Page:   repository.Page{Page: page.Page, PerPage: page.PerPage},
	}
	var err error
	if filter.FromDate, err = optionalDate(q.FromDate); err != nil {
		return nil, nil, err
	}
	if filter.ToDate, err = optionalDate(q.ToDate); err != nil {
		return nil, nil, err
	}

	payments, total, err := s.repo.ListPayments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return payments, response.NewPagination(page.Page, page.PerPage, total), nil
}
