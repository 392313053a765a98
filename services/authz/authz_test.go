package authz

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/database/repository/memstore"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
)

type failingUsers struct {
	*memstore.UserRepo
}

func (failingUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("store unreachable")
}

func TestRoleAuthorizer_Requires(t *testing.T) {
	users := memstore.NewUserRepo(
		models.User{Email: "admin@x.com", Role: models.RoleAdmin},
		models.User{Email: "a@x.com"},
	)
	a := NewRoleAuthorizer(users)
	ctx := context.Background()

	tests := []struct {
		name    string
		claims  Claims
		perm    Permission
		target  string
		allowed bool
	}{
		{name: "self on own email", claims: Claims{Email: "a@x.com"}, perm: PermSelf, target: "a@x.com", allowed: true},
		{name: "self on other email", claims: Claims{Email: "b@x.com"}, perm: PermSelf, target: "a@x.com"},
		{name: "admin role", claims: Claims{Email: "admin@x.com"}, perm: PermAdmin, allowed: true},
		{name: "regular user is not admin", claims: Claims{Email: "a@x.com"}, perm: PermAdmin},
		{name: "unknown user is not admin", claims: Claims{Email: "ghost@x.com"}, perm: PermAdmin},
		{name: "empty claims", claims: Claims{}, perm: PermSelf, target: ""},
		{name: "unknown permission", claims: Claims{Email: "admin@x.com"}, perm: Permission(99)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Requires(ctx, tt.claims, tt.perm, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestRoleAuthorizer_StoreFailureIsNotForbidden(t *testing.T) {
	a := NewRoleAuthorizer(failingUsers{memstore.NewUserRepo()})

	err := a.Requires(context.Background(), Claims{Email: "admin@x.com"}, PermAdmin, "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestPermissionString(t *testing.T) {
	assert.Equal(t, "self", PermSelf.String())
	assert.Equal(t, "admin", PermAdmin.String())
	assert.Equal(t, "permission(7)", Permission(7).String())
}
