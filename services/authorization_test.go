package services

import (
	"testing"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"

	"github.com/stretchr/testify/assert"
)

func TestPolicyAuthorize(t *testing.T) {
	policy := DefaultPolicy()
	guest := Actor{ID: 10, RoleID: constants.RoleRegular}
	other := Actor{ID: 11, RoleID: constants.RoleRegular}
	admin := Actor{ID: 2, RoleID: constants.RoleAdmin}
	super := Actor{ID: 3, RoleID: constants.RoleSuperAdmin}
	booking := Owned(guest.ID)

	tests := []struct {
		name    string
		actor   Actor
		action  Action
		res     *Resource
		allowed bool
	}{
		{"owner views", guest, ActionBookingView, booking, true},
		{"owner cancels", guest, ActionBookingCancel, booking, true},
		{"owner updates", guest, ActionBookingUpdate, booking, true},
		{"stranger views", other, ActionBookingView, booking, false},
		{"stranger cancels", other, ActionBookingCancel, booking, false},
		{"stranger updates", other, ActionBookingUpdate, booking, false},
		{"admin views any", admin, ActionBookingView, booking, true},
		{"super admin cancels any", super, ActionBookingCancel, booking, true},
		{"guest cannot complete own", guest, ActionBookingComplete, booking, false},
		{"admin completes", admin, ActionBookingComplete, booking, true},
		{"admin cannot pay for a guest", admin, ActionPaymentProcess, booking, false},
		{"owner pays", guest, ActionPaymentProcess, booking, true},
		{"guest creates", guest, ActionBookingCreate, nil, true},
		{"admin cannot manage users", admin, ActionUserManage, nil, false},
		{"super admin manages users", super, ActionUserManage, nil, true},
		{"anonymous is not an owner", Actor{}, ActionBookingView, Owned(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.actor, tt.action, tt.res)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
		})
	}
}

func TestPolicyNewRoleNeedsNoCodeChange(t *testing.T) {
	const auditor = 4
	policy := NewPolicy(map[int][]Action{auditor: {ActionBookingView, ActionPaymentManage}})

	assert.NoError(t, policy.Authorize(Actor{ID: 1, RoleID: auditor}, ActionBookingView, Owned(99)))
	assert.Error(t, policy.Authorize(Actor{ID: 1, RoleID: auditor}, ActionBookingCancel, Owned(99)))
}
