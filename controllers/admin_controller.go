package controllers

import (
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Bookings *services.BookingFacade
	Users    *services.UserService
}

func NewAdminController(bookings *services.BookingFacade, users *services.UserService) AdminController {
	return AdminController{
		Bookings: bookings,
		Users:    users,
	}
}

func (a AdminController) UpdateBookingStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := a.Bookings.UpdateStatus(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking status updated successfully", booking)
}

// Occupancy reports the given ?date, or today when it is omitted.
func (a AdminController) Occupancy(c *gin.Context) {
	day := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse(constants.DateLayout, s)
		if err != nil {
			_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "The date field must be a date in YYYY-MM-DD format", err))
			return
		}
		day = parsed
	}
	report, err := a.Bookings.DailyOccupancy(c.Request.Context(), day)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, report)
}

func (a AdminController) ListUsers(c *gin.Context) {
	var q dto.UserListQuery
	if !bindQuery(c, &q) {
		return
	}
	users, page, err := a.Users.List(c.Request.Context(), currentActor(c), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, users, page)
}

func (a AdminController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !decodeJSON(c, &req) {
		return
	}
	user, err := a.Users.Create(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "User created successfully", user)
}

func (a AdminController) UpdateUserRole(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := a.Users.UpdateRole(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "User role updated successfully", user)
}

func (a AdminController) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := a.Users.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "User deleted successfully", nil)
}
