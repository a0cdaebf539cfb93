package auth

import (
	"context"
	"errors"

	"forumflow/internal/models"
)

// ErrForbidden maps to Forbidden: the identity is verified but lacks
// the required capability.
var ErrForbidden = errors.New("insufficient permissions")

type Capability string

// CapabilityManage covers user, announcement and report management.
// It requires the stored role to be admin.
const CapabilityManage Capability = "manage"

// Policy decides whether a verified identity may exercise a capability.
type Policy interface {
	Allow(ctx context.Context, identity Identity, capability Capability) error
}

// roleLookup is the slice of the user repository the policy needs.
type roleLookup interface {
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}

type RolePolicy struct {
	users roleLookup
}

func NewRolePolicy(users roleLookup) *RolePolicy {
	return &RolePolicy{users: users}
}

func (p *RolePolicy) Allow(ctx context.Context, identity Identity, capability Capability) error {
	switch capability {
	case CapabilityManage:
		user, err := p.users.GetByUID(ctx, identity.UID)
		if err != nil {
			return ErrForbidden
		}
		if user.Role != models.RoleAdmin {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
