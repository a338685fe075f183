package services

import (
	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID     uint
	RoleID int
}

// Action names a capability checked by Policy.Authorize.
type Action string

const (
	ActionBookingCreate   Action = "booking:create"
	ActionBookingView     Action = "booking:view"
	ActionBookingUpdate   Action = "booking:update"
	ActionBookingCancel   Action = "booking:cancel"
	ActionBookingConfirm  Action = "booking:confirm"
	ActionBookingComplete Action = "booking:complete"

	ActionPaymentProcess Action = "payment:process"
	ActionPaymentManage  Action = "payment:manage"

	ActionAddOnView   Action = "addon:view"
	ActionAddOnManage Action = "addon:manage"

	ActionRatingCreate Action = "rating:create"
	ActionRatingUpdate Action = "rating:update"
	ActionRatingDelete Action = "rating:delete"

	ActionRoomManage Action = "room:manage"
	ActionUserView   Action = "user:view"
	ActionUserManage Action = "user:manage"
)

// Resource is the object an action targets. OwnerID is the user owning it.
type Resource struct {
	OwnerID uint
}

// Owned builds the resource of something owned by userID.
func Owned(userID uint) *Resource {
	return &Resource{OwnerID: userID}
}

// ownerActions may be performed by the resource owner without a role grant.
var ownerActions = map[Action]bool{
	ActionBookingView:    true,
	ActionBookingUpdate:  true,
	ActionBookingCancel:  true,
	ActionPaymentProcess: true,
	ActionAddOnView:      true,
	ActionAddOnManage:    true,
	ActionRatingCreate:   true,
	ActionRatingUpdate:   true,
	ActionRatingDelete:   true,
}

// Policy maps roles to the actions they may perform on any resource.
type Policy struct {
	grants map[int]map[Action]bool
}

func NewPolicy(grants map[int][]Action) *Policy {
	p := &Policy{grants: make(map[int]map[Action]bool, len(grants))}
	for role, actions := range grants {
		set := make(map[Action]bool, len(actions))
		for _, a := range actions {
			set[a] = true
		}
		p.grants[role] = set
	}
	return p
}

// DefaultPolicy is the guest / admin / super-admin capability table.
func DefaultPolicy() *Policy {
	regular := []Action{ActionBookingCreate}
	admin := append([]Action{
		ActionBookingView, ActionBookingUpdate, ActionBookingCancel, ActionBookingConfirm, ActionBookingComplete,
		ActionPaymentManage, ActionAddOnView, ActionAddOnManage, ActionRatingDelete,
		ActionRoomManage, ActionUserView,
	}, regular...)
	superAdmin := append([]Action{ActionUserManage}, admin...)

	return NewPolicy(map[int][]Action{
		constants.RoleRegular:    regular,
		constants.RoleAdmin:      admin,
		constants.RoleSuperAdmin: superAdmin,
	})
}

// Can reports whether actor's role grants action on any resource.
func (p *Policy) Can(actor Actor, action Action) bool {
	return p.grants[actor.RoleID][action]
}

// Authorize returns an AuthorizationError unless actor may perform action on res.
// A nil res means the action is not tied to an owned resource.
func (p *Policy) Authorize(actor Actor, action Action, res *Resource) error {
	if p.Can(actor, action) {
		return nil
	}
	if res != nil && ownerActions[action] && actor.ID != 0 && res.OwnerID == actor.ID {
		return nil
	}
	return apperrors.Forbidden("You are not authorized to perform this action")
}
