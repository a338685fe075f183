package controllers

import (
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

const maxThumbnailSize = 5 << 20

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) RoomController {
	return RoomController{Rooms: rooms}
}

func (r RoomController) List(c *gin.Context) {
	var q dto.RoomListQuery
	if !bindQuery(c, &q) {
		return
	}
	rooms, page, err := r.Rooms.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, rooms, page)
}

func (r RoomController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	room, err := r.Rooms.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room details retrieved successfully", room)
}

func (r RoomController) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := r.Rooms.Create(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Room created successfully", room)
}

func (r RoomController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := r.Rooms.Update(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room updated successfully", room)
}

func (r RoomController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := r.Rooms.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room deleted successfully", nil)
}

// UploadThumbnail takes the image from the multipart "thumbnail" field.
func (r RoomController) UploadThumbnail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	header, err := c.FormFile("thumbnail")
	if err != nil {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeRequiredField, "The thumbnail field is required", err))
		return
	}
	if header.Size > maxThumbnailSize {
		_ = c.Error(apperrors.Validation("The thumbnail may not be greater than 5MB"))
		return
	}
	file, err := header.Open()
	if err != nil {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Unable to read the thumbnail", err))
		return
	}
	defer file.Close()

	room, err := r.Rooms.UploadThumbnail(c.Request.Context(), currentActor(c), id, file)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room updated successfully", room)
}

func (r RoomController) ListRoomTypes(c *gin.Context) {
	types, err := r.Rooms.ListRoomTypes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room types retrieved successfully", types)
}

func (r RoomController) CreateRoomType(c *gin.Context) {
	var req dto.RoomTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	rt, err := r.Rooms.CreateRoomType(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Room type created successfully", rt)
}

func (r RoomController) UpdateRoomType(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.RoomTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	rt, err := r.Rooms.UpdateRoomType(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room type updated successfully", rt)
}

func (r RoomController) DeleteRoomType(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := r.Rooms.DeleteRoomType(c.Request.Context(), currentActor(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Room type deleted successfully", nil)
}
