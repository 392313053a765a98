package user

import (
	"context"
	"testing"

	"doctorsportal/database/repository"
	"doctorsportal/database/repository/memstore"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(users ...models.User) (*DefaultUserService, *utils.TokenManager) {
	store := repository.NewMemoryStore()
	store.Users = memstore.NewUserRepo(users...)
	tokens := utils.NewTokenManager("test-secret")
	return NewUserService(store, tokens, zap.NewNop()), tokens
}

func TestUpsertUser(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newTestService()

	res, err := svc.UpsertUser(ctx, "a@x.com", models.UserProfile{Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Result.UpsertedCount)

	email, err := tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	res, err = svc.UpsertUser(ctx, "a@x.com", models.UserProfile{Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Result.UpsertedCount)
	assert.Equal(t, int64(1), res.Result.MatchedCount)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ada L.", users[0].Name)
}

func TestUpsertUser_RequiresEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpsertUser(context.Background(), "", models.UserProfile{})
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestAdminRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(models.User{Email: "a@x.com"})

	isAdmin, err := svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	res, err := svc.MakeAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	isAdmin, err = svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
