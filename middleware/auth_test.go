package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
	"hotel-booking/services"
	"hotel-booking/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *services.TokenParser) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(logger.NewDiscardLogger()))
	authed := r.Group("/", AuthMiddleware(tokens))
	authed.GET("/me", func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.RoleID})
	})
	authed.GET("/admin", RequireAction(services.DefaultPolicy(), services.ActionRoomManage), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(apperrors.Conflict(apperrors.ErrCodeRoomUnavailable, "Rooms are taken"))
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenParser("secret")
	r := newRouter(tokens)
	guest, err := tokens.Sign(services.Actor{ID: 7, RoleID: constants.RoleRegular}, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	admin, err := tokens.Sign(services.Actor{ID: 1, RoleID: constants.RoleAdmin}, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)

	w := do(r, "/me", guest)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"role":1}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "garbage").Code)

	forbidden := do(r, "/admin", guest)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.Contains(t, forbidden.Body.String(), `"code":0`)
	assert.Equal(t, http.StatusNoContent, do(r, "/admin", admin).Code)
}

func TestErrorHandler(t *testing.T) {
	r := newRouter(services.NewTokenParser("secret"))

	w := do(r, "/fail", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"code":0,"mess":"Rooms are taken"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":0,"mess":"Internal server error"}`, w.Body.String())
}
