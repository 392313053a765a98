// Package authz is the single place ownership and role checks are decided.
package authz

import (
	"context"
	"errors"
	"fmt"

	userRepo "doctorsportal/database/repository/user"
)

// ErrForbidden is returned when the caller lacks the required permission.
var ErrForbidden = errors.New("forbidden")

// Permission names a capability a request may require.
type Permission int

const (
	// PermSelf allows acting only on the caller's own email.
	PermSelf Permission = iota + 1
	// PermAdmin allows acting when the caller holds the admin role.
	PermAdmin
)

func (p Permission) String() string {
	switch p {
	case PermSelf:
		return "self"
	case PermAdmin:
		return "admin"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

// Claims is the verified identity extracted from a bearer token.
type Claims struct {
	Email string
}

// Authorizer decides whether claims satisfy a permission for a target.
type Authorizer interface {
	// Requires returns nil to allow or an error wrapping ErrForbidden to deny.
	Requires(ctx context.Context, claims Claims, perm Permission, target string) error
}

// RoleAuthorizer resolves roles from the users collection.
type RoleAuthorizer struct {
	Users userRepo.UserRepository
}

// NewRoleAuthorizer creates a RoleAuthorizer.
func NewRoleAuthorizer(users userRepo.UserRepository) *RoleAuthorizer {
	return &RoleAuthorizer{Users: users}
}

func (a *RoleAuthorizer) Requires(ctx context.Context, claims Claims, perm Permission, target string) error {
	if claims.Email == "" {
		return fmt.Errorf("%w: no identity", ErrForbidden)
	}

	switch perm {
	case PermSelf:
		if claims.Email != target {
			return fmt.Errorf("%w: %s may not act for %s", ErrForbidden, claims.Email, target)
		}
		return nil
	case PermAdmin:
		user, err := a.Users.GetByEmail(ctx, claims.Email)
		if err != nil {
			return fmt.Errorf("failed to resolve role for %s: %w", claims.Email, err)
		}
		if user == nil || !user.IsAdmin() {
			return fmt.Errorf("%w: %s is not an admin", ErrForbidden, claims.Email)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown permission %s", ErrForbidden, perm)
	}
}
