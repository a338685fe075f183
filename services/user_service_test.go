package services

import (
	"context"
	"testing"

	"hotel-booking/constants"
	"hotel-booking/dto"
	apperrors "hotel-booking/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	users := NewUserService(UserServiceOptions{Repo: f.repo})
	req := dto.CreateUserRequest{Name: "Ann", Email: " Ann@Example.com ", Password: "secret-pass", RoleID: constants.RoleAdmin}

	user, err := users.Create(ctx, super, req)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-pass")))

	req.Email = "ann@example.com"
	_, err = users.Create(ctx, super, req)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	req.Email = "bob@example.com"
	_, err = users.Create(ctx, admin, req)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	req.Password = "short"
	_, err = users.Create(ctx, super, req)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUserService_RoleAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	users := NewUserService(UserServiceOptions{Repo: f.repo})
	user, err := users.Create(ctx, super, dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com", Password: "secret-pass", RoleID: constants.RoleRegular})
	require.NoError(t, err)

	promoted, err := users.UpdateRole(ctx, super, user.ID, dto.UpdateRoleRequest{RoleID: constants.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, promoted.RoleID)

	_, err = users.UpdateRole(ctx, super, super.ID, dto.UpdateRoleRequest{RoleID: constants.RoleRegular})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	_, err = users.UpdateRole(ctx, super, 999, dto.UpdateRoleRequest{RoleID: constants.RoleAdmin})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	listed, page, err := users.List(ctx, admin, dto.UserListQuery{RoleID: constants.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(1), page.Total)

	_, _, err = users.List(ctx, guest, dto.UserListQuery{})
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))

	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(users.Delete(ctx, super, super.ID)))
	assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(users.Delete(ctx, admin, user.ID)))
	require.NoError(t, users.Delete(ctx, super, user.ID))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(users.Delete(ctx, super, user.ID)))
}
