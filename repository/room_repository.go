package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomFilter struct {
	Search     string
	RoomTypeID uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CheckIn    *time.Time
	CheckOut   *time.Time
	ActiveOnly bool
	SortBy     string
	SortDir    string
	Page
}

var roomSortColumns = map[string]string{
	"id":          "rooms.id",
	"room_number": "rooms.room_number",
	"price":       "room_types.price",
}

// FindRoomsForUpdate loads the rooms with ids, locking their rows.
func (r *Repository) FindRoomsForUpdate(ctx context.Context, ids []uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&rooms).Error
	return rooms, err
}

func (r *Repository) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.conn(ctx).Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeRoomNotFound, "Room not found")
	}
	return &room, nil
}

func (r *Repository) ListRooms(ctx context.Context, f RoomFilter) ([]models.Room, int64, error) {
	q := r.conn(ctx).Model(&models.Room{}).
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id")

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(rooms.room_number) LIKE ? OR LOWER(rooms.description) LIKE ?", like, like)
	}
	if f.RoomTypeID != 0 {
		q = q.Where("rooms.room_type_id = ?", f.RoomTypeID)
	}
	if f.MinPrice != nil {
		q = q.Where("room_types.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("room_types.price <= ?", *f.MaxPrice)
	}
	if f.ActiveOnly {
		q = q.Where("rooms.is_active = ?", true)
	}
	if f.CheckIn != nil && f.CheckOut != nil {
		held := r.conn(ctx).Table("booking_rooms").
			Select("booking_rooms.room_id").
			Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
			Where("bookings.booking_status <> ?", constants.BookingStatusCancelled).
			Where("bookings.check_in_date <= ? AND bookings.check_out_date >= ?", utils.ToDate(*f.CheckOut), utils.ToDate(*f.CheckIn))
		q = q.Where("rooms.id NOT IN (?)", held)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := roomSortColumns[f.SortBy]
	if !ok {
		column = roomSortColumns["id"]
	}
	dir := "ASC"
	if strings.EqualFold(f.SortDir, "desc") {
		dir = "DESC"
	}

	var rooms []models.Room
	err := f.Page.apply(q.Preload("RoomType")).
		Order(fmt.Sprintf("%s %s", column, dir)).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *Repository) CreateRoom(ctx context.Context, room *models.Room) error {
	return r.conn(ctx).Omit(clause.Associations).Create(room).Error
}

func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	return r.conn(ctx).Omit(clause.Associations).Save(room).Error
}

func (r *Repository) DeleteRoom(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&models.Room{}, id).Error
}

// RoomNumberTaken reports whether another room already uses number.
func (r *Repository) RoomNumberTaken(ctx context.Context, number string, excludeID uint) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(&models.Room{}).Where("room_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *Repository) RoomHasBookings(ctx context.Context, roomID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.BookingRoom{}).Where("room_id = ?", roomID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	err := r.conn(ctx).Order("id").Find(&types).Error
	return types, err
}

func (r *Repository) GetRoomType(ctx context.Context, id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := r.conn(ctx).First(&rt, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrCodeRoomTypeNotFound, "Room type not found")
	}
	return &rt, nil
}

func (r *Repository) CreateRoomType(ctx context.Context, rt *models.RoomType) error {
	return r.conn(ctx).Create(rt).Error
}

func (r *Repository) SaveRoomType(ctx context.Context, rt *models.RoomType) error {
	return r.conn(ctx).Save(rt).Error
}

func (r *Repository) DeleteRoomType(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&models.RoomType{}, id).Error
}

func (r *Repository) RoomTypeInUse(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.Room{}).Where("room_type_id = ?", id).Count(&count).Error
	return count > 0, err
}
