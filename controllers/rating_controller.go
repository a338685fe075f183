package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) RatingController {
	return RatingController{Ratings: ratings}
}

func (r RatingController) ListByRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := r.Ratings.ListByRoom(c.Request.Context(), id, q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, page.Data, page.Pagination)
}

func (r RatingController) Create(c *gin.Context) {
	var req dto.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}
	rating, err := r.Ratings.Create(c.Request.Context(), currentActor(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Rating created successfully", rating)
}

func (r RatingController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRatingRequest
	if !bindJSON(c, &req) {
		return
	}
	rating, err := r.Ratings.Update(c.Request.Context(), currentActor(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Rating updated successfully", rating)
}

func (r RatingController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := r.Ratings.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithMessage(c, "Rating deleted successfully", nil)
}
