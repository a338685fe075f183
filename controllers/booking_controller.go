package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings         *services.BookingFacade
	RoomAvailability *services.AvailabilityService
}

func NewBookingController(bookings *services.BookingFacade, availability *services.AvailabilityService) BookingController {
	return BookingController{
		Bookings:         bookings,
		RoomAvailability: availability,
	}
}

func (b BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := b.Bookings.Create(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Booking created successfully", booking)
}

// List serves both /bookings and /admin/bookings; the scope follows the caller's role.
func (b BookingController) List(c *gin.Context) {
	var q dto.BookingListQuery
	if !bindQuery(c, &q) {
		return
	}
	bookings, page, err := b.Bookings.List(c.Request.Context(), currentActor(c), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, bookings, page)
}

func (b BookingController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	booking, err := b.Bookings.Get(c.Request.Context(), currentActor(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking details retrieved successfully", booking)
}

func (b BookingController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := b.Bookings.Update(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking updated successfully", booking)
}

func (b BookingController) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.CancelBookingRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	booking, err := b.Bookings.Cancel(c.Request.Context(), currentActor(c), id, req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking cancelled successfully", booking)
}

func (b BookingController) History(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	history, err := b.Bookings.History(c.Request.Context(), currentActor(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, history)
}

// Availability accepts room_ids as a csv list, repeated parameters or both.
func (b BookingController) Availability(c *gin.Context) {
	roomIDs, ok := idListQuery(c, "room_ids")
	if !ok {
		return
	}
	q := dto.AvailabilityQuery{RoomIDs: roomIDs}
	if !bindQuery(c, &q) {
		return
	}
	result, err := b.RoomAvailability.Check(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, result)
}

func (b BookingController) CancellationPolicy(c *gin.Context) {
	response.Success(c, b.Bookings.CancellationPolicy())
}
