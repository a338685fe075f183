package controllers

import (
	"strconv"

	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

// BookingServiceController serves the extras attached to bookings and the
// catalogue they are picked from.
type BookingServiceController struct {
	AddOns  *services.AddOnService
	Catalog *services.CatalogService
}

func NewBookingServiceController(addOns *services.AddOnService, catalog *services.CatalogService) BookingServiceController {
	return BookingServiceController{
		AddOns:  addOns,
		Catalog: catalog,
	}
}

func (b BookingServiceController) Create(c *gin.Context) {
	var req dto.CreateBookingServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := b.AddOns.Create(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Booking service created successfully.", item)
}

func (b BookingServiceController) List(c *gin.Context) {
	items, err := b.AddOns.List(c.Request.Context(), currentActor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking services retrieved successfully.", items)
}

func (b BookingServiceController) ListByBooking(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	items, err := b.AddOns.ListByBooking(c.Request.Context(), currentActor(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking services retrieved successfully.", items)
}

func (b BookingServiceController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := b.AddOns.Get(c.Request.Context(), currentActor(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, item)
}

func (b BookingServiceController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookingServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := b.AddOns.Update(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking service updated successfully.", item)
}

func (b BookingServiceController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := b.AddOns.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Booking service deleted successfully.", nil)
}

// ListServices accepts an optional ?service_type filter.
func (b BookingServiceController) ListServices(c *gin.Context) {
	var typeID uint
	if s := c.Query("service_type"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid service_type"))
			return
		}
		typeID = uint(v)
	}
	items, err := b.Catalog.ListServices(c.Request.Context(), typeID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Services retrieved successfully", items)
}

func (b BookingServiceController) ListServiceTypes(c *gin.Context) {
	items, err := b.Catalog.ListServiceTypes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Service types retrieved successfully", items)
}

func (b BookingServiceController) CreateServiceType(c *gin.Context) {
	var req dto.CreateServiceTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := b.Catalog.CreateServiceType(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Service type created successfully", item)
}

func (b BookingServiceController) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := b.Catalog.CreateService(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Service created successfully", item)
}
