package services

import (
	"context"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/services/logger"
	"hotel-booking/validator"
)

// AddOnService manages the extra services attached to bookings.
type AddOnService struct {
	repo   *repository.Repository
	policy *Policy
	hooks  *lifecycleHooks
}

type AddOnServiceOptions struct {
	Repo   *repository.Repository
	Policy *Policy
	Cache  Cache
	Logger logger.Logger
}

func NewAddOnService(opts AddOnServiceOptions) *AddOnService {
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	return &AddOnService{
		repo:   opts.Repo,
		policy: opts.Policy,
		hooks:  newLifecycleHooks(opts.Cache, nil, opts.Logger, nil, 0),
	}
}

// booking loads the parent booking and authorizes action on it. Mutations of
// a cancelled booking's services are refused.
func (s *AddOnService) booking(ctx context.Context, actor Actor, action Action, bookingID uint) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, action, Owned(booking.UserID)); err != nil {
		return nil, err
	}
	if action == ActionAddOnManage && booking.BookingStatus == constants.BookingStatusCancelled {
		return nil, apperrors.Conflict(apperrors.ErrCodeBookingTerminal, "Cannot change services of a cancelled booking")
	}
	return booking, nil
}

func (s *AddOnService) Create(ctx context.Context, actor Actor, req dto.CreateBookingServiceRequest) (*models.BookingService, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount("price", *req.Price); err != nil {
		return nil, err
	}
	booking, err := s.booking(ctx, actor, ActionAddOnManage, req.BookingID)
	if err != nil {
		return nil, err
	}
	service, err := s.repo.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetServiceType(ctx, req.ServiceTypeID); err != nil {
		return nil, err
	}
	if service.ServiceTypeID != req.ServiceTypeID {
		return nil, apperrors.Validation("The service does not belong to the selected service type")
	}

	item := &models.BookingService{
		BookingID:     booking.ID,
		ServiceID:     service.ID,
		ServiceTypeID: req.ServiceTypeID,
		Quantity:      req.Quantity,
		Price:         *req.Price,
	}
	if err := s.repo.CreateBookingService(ctx, item); err != nil {
		return nil, apperrors.Transaction("Failed to add booking service", err)
	}
	s.hooks.invalidate(ctx, booking.ID)
	return s.repo.GetBookingService(ctx, item.ID)
}

func (s *AddOnService) Get(ctx context.Context, actor Actor, id uint) (*models.BookingService, error) {
	item, err := s.repo.GetBookingService(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.booking(ctx, actor, ActionAddOnView, item.BookingID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *AddOnService) ListByBooking(ctx context.Context, actor Actor, bookingID uint) ([]models.BookingService, error) {
	if _, err := s.booking(ctx, actor, ActionAddOnView, bookingID); err != nil {
		return nil, err
	}
	return s.repo.ListBookingServices(ctx, repository.AddOnFilter{BookingID: bookingID})
}

// List returns every add-on the actor may see.
func (s *AddOnService) List(ctx context.Context, actor Actor) ([]models.BookingService, error) {
	filter := repository.AddOnFilter{}
	if !s.policy.Can(actor, ActionAddOnView) {
		filter.UserID = actor.ID
	}
	return s.repo.ListBookingServices(ctx, filter)
}

func (s *AddOnService) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateBookingServiceRequest) (*models.BookingService, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	item, err := s.repo.GetBookingService(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.booking(ctx, actor, ActionAddOnManage, item.BookingID); err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Price != nil {
		if err := validator.ValidateAmount("price", *req.Price); err != nil {
			return nil, err
		}
		item.Price = *req.Price
	}
	if err := s.repo.SaveBookingService(ctx, item); err != nil {
		return nil, apperrors.Transaction("Failed to update booking service", err)
	}
	s.hooks.invalidate(ctx, item.BookingID)
	return item, nil
}

func (s *AddOnService) Delete(ctx context.Context, actor Actor, id uint) error {
	item, err := s.repo.GetBookingService(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.booking(ctx, actor, ActionAddOnManage, item.BookingID); err != nil {
		return err
	}
	if err := s.repo.DeleteBookingService(ctx, id); err != nil {
		return apperrors.Transaction("Failed to delete booking service", err)
	}
	s.hooks.invalidate(ctx, item.BookingID)
	return nil
}
