package controllers

import (
	"strconv"
	"strings"

	apperrors "hotel-booking/errors"
	"hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/validator"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// currentActor is the authenticated caller, or the zero Actor on public routes.
func currentActor(c *gin.Context) services.Actor {
	actor, _ := middleware.CurrentActor(c)
	return actor
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(apperrors.Validation("Invalid " + name))
		return 0, false
	}
	return uint(id), true
}

// idListQuery collects ids from repeated and comma separated query values.
func idListQuery(c *gin.Context, name string) ([]uint, bool) {
	var ids []uint
	for _, value := range c.QueryArray(name) {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil || id == 0 {
				_ = c.Error(apperrors.Validation("Invalid "+name).WithData(name, part))
				return nil, false
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(validator.Translate(err))
		return false
	}
	return true
}

// decodeJSON reads the body without validating it, for requests the service
// normalises before running the binding rules itself.
func decodeJSON(c *gin.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid request body", err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		_ = c.Error(validator.Translate(err))
		return false
	}
	return true
}
