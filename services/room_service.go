package services

import (
	"context"
	"io"
	"strings"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/response"
	"hotel-booking/services/logger"
	"hotel-booking/services/storage"
	"hotel-booking/validator"

	"github.com/shopspring/decimal"
)

const roomThumbnailFolder = "rooms"

type RoomService struct {
	repo     *repository.Repository
	policy   *Policy
	uploader storage.ImageUploader
	cache    Cache
	logger   logger.Logger
	ttl      time.Duration
}

type RoomServiceOptions struct {
	Repo     *repository.Repository
	Policy   *Policy
	Uploader storage.ImageUploader
	Cache    Cache
	Logger   logger.Logger
	CacheTTL time.Duration
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	hooks := newLifecycleHooks(opts.Cache, nil, opts.Logger, nil, opts.CacheTTL)
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	if opts.Uploader == nil {
		opts.Uploader = storage.DisabledUploader{}
	}
	return &RoomService{
		repo:     opts.Repo,
		policy:   opts.Policy,
		uploader: opts.Uploader,
		cache:    hooks.cache,
		logger:   hooks.logger,
		ttl:      hooks.ttl,
	}
}

// List searches rooms. With both check_in and check_out set only rooms free
// for the whole stay are returned.
func (s *RoomService) List(ctx context.Context, q dto.RoomListQuery) ([]models.Room, *response.Pagination, error) {
	if err := validator.Struct(q); err != nil {
		return nil, nil, err
	}
	page := q.PageQuery.Normalize()
	filter := repository.RoomFilter{
		Search:     q.Search,
		RoomTypeID: q.RoomTypeID,
		SortBy:     q.SortBy,
		SortDir:    q.SortDir,
		Page:       repository.Page{Page: page.Page, PerPage: page.PerPage},
	}

	var err error
	if filter.MinPrice, err = optionalDecimal("min_price", q.MinPrice); err != nil {
		return nil, nil, err
	}
	if filter.MaxPrice, err = optionalDecimal("max_price", q.MaxPrice); err != nil {
		return nil, nil, err
	}
	if filter.CheckIn, err = optionalDate(q.CheckIn); err != nil {
		return nil, nil, err
	}
	if filter.CheckOut, err = optionalDate(q.CheckOut); err != nil {
		return nil, nil, err
	}
	if (filter.CheckIn == nil) != (filter.CheckOut == nil) {
		return nil, nil, apperrors.Validation("Both check_in and check_out are required to filter by availability")
	}
	if filter.CheckIn != nil {
		if err := validator.ValidateStay(*filter.CheckIn, *filter.CheckOut, time.Time{}); err != nil {
			return nil, nil, err
		}
		filter.ActiveOnly = true
	}

	rooms, total, err := s.repo.ListRooms(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return rooms, response.NewPagination(page.Page, page.PerPage, total), nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if hit, err := s.cache.Get(ctx, roomCacheKey(id), &room); err != nil {
		s.logger.Warn("room cache read failed for %d: %v", id, err)
	} else if hit {
		return &room, nil
	}

	loaded, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, roomCacheKey(id), loaded, s.ttl); err != nil {
		s.logger.Warn("room cache write failed for %d: %v", id, err)
	}
	return loaded, nil
}

func (s *RoomService) Create(ctx context.Context, actor Actor, req dto.CreateRoomRequest) (*models.Room, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	number := strings.TrimSpace(req.RoomNumber)
	if err := s.checkRoomNumber(ctx, number, 0); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	room := &models.Room{
		RoomNumber:  number,
		RoomTypeID:  req.RoomTypeID,
		Description: req.Description,
		Thumbnail:   constants.DefaultRoomImage,
		IsActive:    true,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, apperrors.Transaction("Failed to create room", err)
	}
	return s.repo.GetRoom(ctx, room.ID)
}

func (s *RoomService) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateRoomRequest) (*models.Room, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		number := strings.TrimSpace(*req.RoomNumber)
		if err := s.checkRoomNumber(ctx, number, id); err != nil {
			return nil, err
		}
		room.RoomNumber = number
	}
	if req.RoomTypeID != nil {
		if _, err := s.repo.GetRoomType(ctx, *req.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.RoomType = nil
	if err := s.repo.SaveRoom(ctx, room); err != nil {
		return nil, apperrors.Transaction("Failed to update room", err)
	}
	s.invalidate(ctx, id)
	return s.repo.GetRoom(ctx, id)
}

// Delete removes a room that has never been booked.
func (s *RoomService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return err
	}
	if _, err := s.repo.GetRoom(ctx, id); err != nil {
		return err
	}
	booked, err := s.repo.RoomHasBookings(ctx, id)
	if err != nil {
		return err
	}
	if booked {
		return apperrors.Conflict(apperrors.ErrCodeInvalidOperation, "Cannot delete a room that has bookings. Deactivate it instead")
	}
	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return apperrors.Transaction("Failed to delete room", err)
	}
	s.invalidate(ctx, id)
	return nil
}

// UploadThumbnail stores the image and points the room at it.
func (s *RoomService) UploadThumbnail(ctx context.Context, actor Actor, id uint, file io.Reader) (*models.Room, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.uploader.Upload(ctx, file, roomThumbnailFolder)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUploadFailed, "Failed to upload thumbnail", err)
	}
	room.Thumbnail = url
	room.RoomType = nil
	if err := s.repo.SaveRoom(ctx, room); err != nil {
		return nil, apperrors.Transaction("Failed to update room", err)
	}
	s.invalidate(ctx, id)
	return s.repo.GetRoom(ctx, id)
}

func (s *RoomService) checkRoomNumber(ctx context.Context, number string, excludeID uint) error {
	if number == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "The room number field is required", nil)
	}
	taken, err := s.repo.RoomNumberTaken(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.Conflict(apperrors.ErrCodeDuplicate, "The room number has already been taken")
	}
	return nil
}

func (s *RoomService) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return s.repo.ListRoomTypes(ctx)
}

func (s *RoomService) CreateRoomType(ctx context.Context, actor Actor, req dto.RoomTypeRequest) (*models.RoomType, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount("price", *req.Price); err != nil {
		return nil, err
	}
	rt := &models.RoomType{
		Name:        req.Name,
		Price:       *req.Price,
		Capacity:    req.Capacity,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.repo.CreateRoomType(ctx, rt); err != nil {
		return nil, apperrors.Transaction("Failed to create room type", err)
	}
	return rt, nil
}

func (s *RoomService) UpdateRoomType(ctx context.Context, actor Actor, id uint, req dto.RoomTypeRequest) (*models.RoomType, error) {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validator.ValidateAmount("price", *req.Price); err != nil {
		return nil, err
	}
	rt, err := s.repo.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}
	rt.Name = req.Name
	rt.Price = *req.Price
	rt.Capacity = req.Capacity
	rt.Description = req.Description
	rt.Image = req.Image
	if err := s.repo.SaveRoomType(ctx, rt); err != nil {
		return nil, apperrors.Transaction("Failed to update room type", err)
	}
	s.invalidateAll(ctx)
	return rt, nil
}

func (s *RoomService) DeleteRoomType(ctx context.Context, actor Actor, id uint) error {
	if err := s.policy.Authorize(actor, ActionRoomManage, nil); err != nil {
		return err
	}
	if _, err := s.repo.GetRoomType(ctx, id); err != nil {
		return err
	}
	inUse, err := s.repo.RoomTypeInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.Conflict(apperrors.ErrCodeInvalidOperation, "Cannot delete a room type that still has rooms")
	}
	if err := s.repo.DeleteRoomType(ctx, id); err != nil {
		return apperrors.Transaction("Failed to delete room type", err)
	}
	return nil
}

func (s *RoomService) invalidate(ctx context.Context, id uint) {
	if err := s.cache.Delete(ctx, roomCacheKey(id)); err != nil {
		s.logger.Warn("room cache invalidation failed for %d: %v", id, err)
	}
	s.invalidateBookings(ctx)
}

// invalidateAll drops every cached room; room type changes show up in each of them.
func (s *RoomService) invalidateAll(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, roomDetailPattern); err != nil {
		s.logger.Warn("room cache invalidation failed: %v", err)
	}
	s.invalidateBookings(ctx)
}

// invalidateBookings drops cached booking details, which embed their rooms.
func (s *RoomService) invalidateBookings(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, bookingDetailPattern); err != nil {
		s.logger.Warn("booking cache invalidation failed: %v", err)
	}
}

func optionalDecimal(field, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "The "+field+" field must be a number", err)
	}
	return &d, nil
}
