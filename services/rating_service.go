package services

import (
	"context"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/response"
	"hotel-booking/services/logger"
	"hotel-booking/validator"
)

type RatingService struct {
	repo   *repository.Repository
	policy *Policy
	cache  Cache
	logger logger.Logger
	ttl    time.Duration
}

type RatingServiceOptions struct {
	Repo     *repository.Repository
	Policy   *Policy
	Cache    Cache
	Logger   logger.Logger
	CacheTTL time.Duration
}

func NewRatingService(opts RatingServiceOptions) *RatingService {
	hooks := newLifecycleHooks(opts.Cache, nil, opts.Logger, nil, opts.CacheTTL)
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	return &RatingService{
		repo:   opts.Repo,
		policy: opts.Policy,
		cache:  hooks.cache,
		logger: hooks.logger,
		ttl:    hooks.ttl,
	}
}

// Create rates a completed booking. Each guest rates a booking once.
func (s *RatingService) Create(ctx context.Context, actor Actor, req dto.CreateRatingRequest) (*models.Rating, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	booking, err := s.repo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, ActionRatingCreate, Owned(booking.UserID)); err != nil {
		return nil, err
	}
	if booking.BookingStatus != constants.BookingStatusCompleted {
		return nil, apperrors.Conflict(apperrors.ErrCodeInvalidOperation, "Can only rate completed bookings")
	}
	exists, err := s.repo.RatingExists(ctx, actor.ID, booking.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict(apperrors.ErrCodeDuplicateRating, "You have already rated this booking")
	}

	rating := &models.Rating{
		GuestID:   actor.ID,
		BookingID: booking.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.repo.CreateRating(ctx, rating); err != nil {
		return nil, apperrors.Transaction("Failed to create rating", err)
	}
	s.invalidate(ctx)
	return rating, nil
}

func (s *RatingService) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateRatingRequest) (*models.Rating, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	rating, err := s.repo.GetRating(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, ActionRatingUpdate, Owned(rating.GuestID)); err != nil {
		return nil, err
	}
	rating.Rating = req.Rating
	rating.Comment = req.Comment
	if err := s.repo.SaveRating(ctx, rating); err != nil {
		return nil, apperrors.Transaction("Failed to update rating", err)
	}
	s.invalidate(ctx)
	return rating, nil
}

func (s *RatingService) Delete(ctx context.Context, actor Actor, id uint) error {
	rating, err := s.repo.GetRating(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.Authorize(actor, ActionRatingDelete, Owned(rating.GuestID)); err != nil {
		return err
	}
	if err := s.repo.DeleteRating(ctx, id); err != nil {
		return apperrors.Transaction("Failed to delete rating", err)
	}
	s.invalidate(ctx)
	return nil
}

// ListByRoom returns the ratings left on bookings of a room.
func (s *RatingService) ListByRoom(ctx context.Context, roomID uint, q dto.PageQuery) (*dto.PaginatedResponse[[]models.Rating], error) {
	page := q.Normalize()
	key := roomRatingsCacheKey(roomID, page.Page, page.PerPage)

	var cached dto.PaginatedResponse[[]models.Rating]
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("rating cache read failed for room %d: %v", roomID, err)
	} else if hit {
		return &cached, nil
	}

	if _, err := s.repo.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	ratings, total, err := s.repo.ListRoomRatings(ctx, roomID, repository.Page{Page: page.Page, PerPage: page.PerPage})
	if err != nil {
		return nil, err
	}
	result := &dto.PaginatedResponse[[]models.Rating]{
		Data:       ratings,
		Pagination: response.NewPagination(page.Page, page.PerPage, total),
	}
	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		s.logger.Warn("rating cache write failed for room %d: %v", roomID, err)
	}
	return result, nil
}

func (s *RatingService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, roomRatingsPattern); err != nil {
		s.logger.Warn("rating cache invalidation failed: %v", err)
	}
}
