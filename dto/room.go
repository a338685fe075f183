package dto

import "github.com/shopspring/decimal"

type RoomListQuery struct {
	Search     string `form:"search"`
	RoomTypeID uint   `form:"room_type"`
	MinPrice   string `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice   string `form:"max_price" binding:"omitempty,numeric"`
	CheckIn    string `form:"check_in" binding:"omitempty,date"`
	CheckOut   string `form:"check_out" binding:"omitempty,date"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=id room_number price"`
	SortDir    string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	PageQuery
}

type CreateRoomRequest struct {
	RoomNumber  string `json:"roomNumber" binding:"required,max=20"`
	RoomTypeID  uint   `json:"roomTypeId" binding:"required,gt=0"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateRoomRequest struct {
	RoomNumber  *string `json:"roomNumber" binding:"omitempty,max=20"`
	RoomTypeID  *uint   `json:"roomTypeId" binding:"omitempty,gt=0"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type RoomTypeRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Capacity    int              `json:"capacity" binding:"required,min=1"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
}
