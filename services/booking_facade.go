package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/builders"
	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/response"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"
	"hotel-booking/utils"
	"hotel-booking/validator"

	"github.com/lib/pq"
)

// BookingFacade runs the booking lifecycle for every caller. What a caller may
// do is decided by the Policy, not by which route it came through.
type BookingFacade struct {
	repo         *repository.Repository
	payments     *PaymentProcessor
	policy       *Policy
	cancellation *CancellationPolicy
	hooks        *lifecycleHooks
	location     *time.Location
}

type BookingFacadeOptions struct {
	Repo         *repository.Repository
	Payments     *PaymentProcessor
	Policy       *Policy
	Cancellation *CancellationPolicy
	Cache        Cache
	Publisher    notification.Publisher
	Logger       logger.Logger
	Location     *time.Location
	Now          func() time.Time
	CacheTTL     time.Duration
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	if opts.Payments == nil {
		opts.Payments = NewPaymentProcessor(nil, "")
	}
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Cancellation == nil {
		opts.Cancellation = NewCancellationPolicy(constants.NoCancelWindow, opts.Location)
	}
	return &BookingFacade{
		repo:         opts.Repo,
		payments:     opts.Payments,
		policy:       opts.Policy,
		cancellation: opts.Cancellation,
		hooks:        newLifecycleHooks(opts.Cache, opts.Publisher, opts.Logger, opts.Now, opts.CacheTTL),
		location:     opts.Location,
	}
}

func (f *BookingFacade) today() time.Time {
	return utils.CalendarDate(f.hooks.now(), f.location)
}

// Create books the rooms for the stay and charges the payment in one transaction.
func (f *BookingFacade) Create(ctx context.Context, actor Actor, req dto.CreateBookingRequest) (*models.Booking, error) {
	if err := f.policy.Authorize(actor, ActionBookingCreate, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := parseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateStay(checkIn, checkOut, f.today()); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount("total payment", *req.TotalPayment); err != nil {
		return nil, err
	}
	if req.PaymentMethod == constants.PaymentMethodCreditCard && strings.TrimSpace(req.SourceToken) == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "A payment source token is required for credit card payments", nil)
	}
	roomIDs := validator.UniqueIDs(req.RoomIDs)

	booking, payment := builders.NewBookingBuilder().
		WithUser(actor.ID).
		WithStay(checkIn, checkOut).
		WithRooms(roomIDs).
		WithPayment(req.PaymentMethod, *req.TotalPayment).
		Build()

	err = f.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := loadBookableRooms(ctx, tx, roomIDs); err != nil {
			return err
		}
		if err := EnsureAvailable(ctx, tx, roomIDs, checkIn, checkOut, 0); err != nil {
			return err
		}

		if err := tx.CreateBooking(ctx, booking); err != nil {
			return err
		}
		if err := tx.AddBookingRooms(ctx, booking.ID, roomIDs); err != nil {
			return err
		}

		description := fmt.Sprintf("Booking #%d", booking.ID)
		result, err := f.payments.Charge(ctx, req.PaymentMethod, payment.TotalPayment, req.SourceToken, description)
		if err != nil {
			return err
		}
		payment.BookingID = booking.ID
		payment.TransactionID = &result.TransactionID
		payment.PaymentStatus = result.Status
		payment.ReceiptURL = result.ReceiptURL
		payment.DatePayment = f.hooks.now()
		if err := tx.CreatePayment(ctx, payment); err != nil {
			return err
		}

		if payment.PaymentStatus == constants.PaymentStatusCompleted {
			if err := models.GetBookingState(booking.BookingStatus).Confirm(booking); err != nil {
				return err
			}
			if err := tx.UpdateBookingStatus(ctx, booking); err != nil {
				return err
			}
		}
		return f.hooks.record(ctx, tx, booking, actor, "", "booking created")
	})
	if err != nil {
		return nil, apperrors.Transaction("Failed to create booking", err)
	}

	f.hooks.committed(ctx, constants.EventBookingCreated, booking)
	return f.repo.GetBooking(ctx, booking.ID)
}

// Update changes the stay, the room set or the payment details of an open booking.
func (f *BookingFacade) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateBookingRequest) (*models.Booking, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	err := f.repo.Transaction(ctx, func(tx *repository.Repository) error {
		booking, err := tx.LockBooking(ctx, id)
		if err != nil {
			return err
		}
		if err := f.policy.Authorize(actor, ActionBookingUpdate, Owned(booking.UserID)); err != nil {
			return err
		}
		if booking.IsTerminal() {
			return apperrors.Conflict(apperrors.ErrCodeBookingTerminal, "Cannot update a cancelled or completed booking")
		}

		checkIn, checkOut := booking.CheckIn(), booking.CheckOut()
		datesChanged := req.CheckInDate != nil || req.CheckOutDate != nil
		if req.CheckInDate != nil {
			if checkIn, err = utils.ParseDate(*req.CheckInDate); err != nil {
				return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid check in date", err)
			}
		}
		if req.CheckOutDate != nil {
			if checkOut, err = utils.ParseDate(*req.CheckOutDate); err != nil {
				return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid check out date", err)
			}
		}
		roomIDs := booking.RoomIDs()
		roomsChanged := req.RoomIDs != nil
		if roomsChanged {
			roomIDs = validator.UniqueIDs(*req.RoomIDs)
		}

		if datesChanged || roomsChanged {
			today := time.Time{}
			if req.CheckInDate != nil {
				today = f.today()
			}
			if err := validator.ValidateStay(checkIn, checkOut, today); err != nil {
				return err
			}
			if roomsChanged {
				if err := loadBookableRooms(ctx, tx, roomIDs); err != nil {
					return err
				}
			}
			if err := EnsureAvailable(ctx, tx, roomIDs, checkIn, checkOut, booking.ID); err != nil {
				return err
			}
		}
		if datesChanged {
			if err := tx.UpdateBookingDates(ctx, booking.ID, checkIn, checkOut); err != nil {
				return err
			}
		}
		if roomsChanged {
			if err := tx.ReplaceBookingRooms(ctx, booking.ID, roomIDs); err != nil {
				return err
			}
		}
		return updatePaymentFields(ctx, tx, booking.ID, req)
	})
	if err != nil {
		return nil, apperrors.Transaction("Failed to update booking", err)
	}

	updated, err := f.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	f.hooks.committed(ctx, constants.EventBookingUpdated, updated)
	return updated, nil
}

func updatePaymentFields(ctx context.Context, tx *repository.Repository, bookingID uint, req dto.UpdateBookingRequest) error {
	if req.PaymentMethod == nil && req.TotalPayment == nil && req.ReceiptURL == nil {
		return nil
	}
	payment, err := tx.FindPaymentByBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperrors.NotFound(apperrors.ErrCodePaymentNotFound, "Payment not found for this booking")
	}
	if req.PaymentMethod != nil {
		payment.MethodPayment = *req.PaymentMethod
	}
	if req.TotalPayment != nil {
		if err := validator.ValidateAmount("total payment", *req.TotalPayment); err != nil {
			return err
		}
		payment.TotalPayment = *req.TotalPayment
	}
	if req.ReceiptURL != nil {
		payment.ReceiptURL = req.ReceiptURL
	}
	return tx.SavePayment(ctx, payment)
}

// Cancel cancels a pending or confirmed booking outside the no-cancel window.
func (f *BookingFacade) Cancel(ctx context.Context, actor Actor, id uint, reason *string) (*models.Booking, error) {
	return f.transition(ctx, actor, id, ActionBookingCancel, constants.EventBookingCancelled,
		func(b *models.Booking) error {
			if !b.IsTerminal() {
				if err := f.cancellation.Check(b.CheckIn(), f.hooks.now()); err != nil {
					return err
				}
			}
			return models.GetBookingState(b.BookingStatus).Cancel(b, normalizeReason(reason))
		})
}

func (f *BookingFacade) Complete(ctx context.Context, actor Actor, id uint) (*models.Booking, error) {
	return f.transition(ctx, actor, id, ActionBookingComplete, constants.EventBookingCompleted,
		func(b *models.Booking) error {
			return models.GetBookingState(b.BookingStatus).Complete(b)
		})
}

func (f *BookingFacade) Confirm(ctx context.Context, actor Actor, id uint) (*models.Booking, error) {
	return f.transition(ctx, actor, id, ActionBookingConfirm, constants.EventBookingConfirmed,
		func(b *models.Booking) error {
			return models.GetBookingState(b.BookingStatus).Confirm(b)
		})
}

// UpdateStatus is the administrative entry point for status changes.
func (f *BookingFacade) UpdateStatus(ctx context.Context, actor Actor, id uint, req dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	switch req.Status {
	case constants.BookingStatusConfirmed:
		return f.Confirm(ctx, actor, id)
	case constants.BookingStatusCancelled:
		return f.Cancel(ctx, actor, id, req.Reason)
	case constants.BookingStatusCompleted:
		return f.Complete(ctx, actor, id)
	default:
		return nil, apperrors.Validation(fmt.Sprintf("Unsupported booking status %q", req.Status))
	}
}

// transition locks the booking, checks action against its owner, applies the
// state change and records it.
func (f *BookingFacade) transition(ctx context.Context, actor Actor, id uint, action Action, event string, apply func(*models.Booking) error) (*models.Booking, error) {
	var booking *models.Booking
	err := f.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		booking, err = tx.LockBooking(ctx, id)
		if err != nil {
			return err
		}
		if err := f.policy.Authorize(actor, action, Owned(booking.UserID)); err != nil {
			return err
		}
		from := booking.BookingStatus
		if err := apply(booking); err != nil {
			return err
		}
		if err := tx.UpdateBookingStatus(ctx, booking); err != nil {
			return err
		}
		return f.hooks.record(ctx, tx, booking, actor, from, "")
	})
	if err != nil {
		return nil, apperrors.Transaction("Failed to update booking status", err)
	}

	f.hooks.committed(ctx, event, booking)
	return f.repo.GetBooking(ctx, id)
}

// Get returns a booking visible to actor, served from the cache when possible.
func (f *BookingFacade) Get(ctx context.Context, actor Actor, id uint) (*models.Booking, error) {
	var booking models.Booking
	hit, err := f.hooks.cache.Get(ctx, bookingCacheKey(id), &booking)
	if err != nil {
		f.hooks.logger.Warn("booking cache read failed for %d: %v", id, err)
	}
	if !hit {
		loaded, err := f.repo.GetBooking(ctx, id)
		if err != nil {
			return nil, err
		}
		booking = *loaded
		if err := f.hooks.cache.Set(ctx, bookingCacheKey(id), &booking, f.hooks.ttl); err != nil {
			f.hooks.logger.Warn("booking cache write failed for %d: %v", id, err)
		}
	}

	if err := f.policy.Authorize(actor, ActionBookingView, Owned(booking.UserID)); err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns the bookings actor may see. Callers without booking:view
// only get their own.
func (f *BookingFacade) List(ctx context.Context, actor Actor, q dto.BookingListQuery) ([]models.Booking, *response.Pagination, error) {
	if err := validator.Struct(q); err != nil {
		return nil, nil, err
	}
	page := q.PageQuery.Normalize()
	filter := repository.BookingFilter{
		Status: q.Status,
		Page:   repository.Page{Page: page.Page, PerPage: page.PerPage},
	}
	if !f.policy.Can(actor, ActionBookingView) {
		filter.UserID = actor.ID
	}
	var err error
	if filter.FromDate, err = optionalDate(q.FromDate); err != nil {
		return nil, nil, err
	}
	if filter.ToDate, err = optionalDate(q.ToDate); err != nil {
		return nil, nil, err
	}

	bookings, total, err := f.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return bookings, response.NewPagination(page.Page, page.PerPage, total), nil
}

// History returns the status trail of a booking.
func (f *BookingFacade) History(ctx context.Context, actor Actor, id uint) ([]models.BookingHistory, error) {
	booking, err := f.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := f.policy.Authorize(actor, ActionBookingView, Owned(booking.UserID)); err != nil {
		return nil, err
	}
	return f.repo.ListHistory(ctx, id)
}

// DailyOccupancy reports arrivals, departures and in-house bookings on day.
func (f *BookingFacade) DailyOccupancy(ctx context.Context, day time.Time) (*models.OccupancyReport, error) {
	return f.repo.Occupancy(ctx, utils.CalendarDate(day, f.location))
}

func (f *BookingFacade) CancellationPolicy() dto.CancellationPolicyResponse {
	return f.cancellation.Describe()
}

// loadBookableRooms locks the rooms and checks every one exists and is active.
func loadBookableRooms(ctx context.Context, tx *repository.Repository, roomIDs []uint) error {
	rooms, err := tx.FindRoomsForUpdate(ctx, roomIDs)
	if err != nil {
		return err
	}
	if len(rooms) != len(roomIDs) {
		return apperrors.Validation("One or more selected rooms do not exist").WithData("room_ids", missingRooms(roomIDs, rooms))
	}
	for _, room := range rooms {
		if !room.IsActive {
			return apperrors.Validation(fmt.Sprintf("Room %s is not open for booking", room.RoomNumber))
		}
	}
	return nil
}

func missingRooms(ids []uint, rooms []models.Room) []uint {
	found := make(map[uint]bool, len(rooms))
	for _, r := range rooms {
		found[r.ID] = true
	}
	missing := []uint{}
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func parseStay(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid check in date", err)
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid check out date", err)
	}
	return checkIn, checkOut, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, fmt.Sprintf("Invalid date %q", s), err)
	}
	return &d, nil
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// lifecycleHooks holds what every booking mutation does besides the write:
// the audit row inside the transaction, and the cache and event after commit.
type lifecycleHooks struct {
	cache     Cache
	publisher notification.Publisher
	logger    logger.Logger
	now       func() time.Time
	ttl       time.Duration
}

func newLifecycleHooks(cache Cache, publisher notification.Publisher, log logger.Logger, now func() time.Time, ttl time.Duration) *lifecycleHooks {
	if cache == nil {
		cache = NoopCache{}
	}
	if publisher == nil {
		publisher = notification.NoopPublisher{}
	}
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &lifecycleHooks{cache: cache, publisher: publisher, logger: log, now: now, ttl: ttl}
}

func (h *lifecycleHooks) record(ctx context.Context, tx *repository.Repository, booking *models.Booking, actor Actor, from, note string) error {
	ids := booking.RoomIDs()
	roomIDs := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		roomIDs = append(roomIDs, int64(id))
	}
	return tx.AddHistory(ctx, &models.BookingHistory{
		BookingID:  booking.ID,
		ActorID:    actor.ID,
		FromStatus: from,
		ToStatus:   booking.BookingStatus,
		RoomIDs:    roomIDs,
		Note:       note,
	})
}

// committed drops the cached booking and publishes event. Failures are logged only.
func (h *lifecycleHooks) committed(ctx context.Context, event string, booking *models.Booking) {
	h.invalidate(ctx, booking.ID)
	msg := notification.NewEventBuilder(event, booking).At(h.now()).Build()
	if err := h.publisher.Publish(ctx, msg); err != nil {
		h.logger.WithFields(map[string]interface{}{
			"booking_id": booking.ID,
			"event":      event,
		}).Warn("publish booking event: %v", err)
	}
}

func (h *lifecycleHooks) invalidate(ctx context.Context, bookingID uint) {
	if err := h.cache.Delete(ctx, bookingCacheKey(bookingID)); err != nil {
		h.logger.Warn("booking cache invalidation failed for %d: %v", bookingID, err)
	}
}
