package middleware

import (
	apperrors "hotel-booking/errors"
	"hotel-booking/response"
	"hotel-booking/services"
	"hotel-booking/services/logger"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// AuthMiddleware verifies the bearer token and stores the caller in the context.
func AuthMiddleware(tokens *services.TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := tokens.Parse(c.GetHeader("Authorization"))
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Set("userID", actor.ID)
		c.Set("userRole", actor.RoleID)
		c.Next()
	}
}

// CurrentActor returns the caller set by AuthMiddleware.
func CurrentActor(c *gin.Context) (services.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return services.Actor{}, false
	}
	actor, ok := v.(services.Actor)
	return actor, ok
}

// RequireAction lets through callers whose role grants action on any resource.
func RequireAction(policy *services.Policy, action services.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if err := policy.Authorize(actor, action, nil); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorHandler renders the last error pushed by a handler.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if appErr := apperrors.GetAppError(err); appErr == nil || appErr.HTTPStatus() >= 500 {
			log.WithFields(map[string]interface{}{
				"request_id": c.GetString(requestIDKey),
				"path":       c.FullPath(),
			}).Error("request failed: %v", err)
		}
		response.FromError(c, err)
	}
}
