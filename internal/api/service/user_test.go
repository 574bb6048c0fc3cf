package service

import (
	"context"
	"testing"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestListAllUserRoles(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)

	auth := &AuthService{Store: st}
	svc := &UserService{Store: st}

	alice, _, err := auth.Register(ctx, "alice", "Password123!", nil)
	require.NoError(t, err)

	root, _, err := auth.Register(ctx, "root", "Password123!", []string{domain.RoleAdmin, domain.RoleModerator})
	require.NoError(t, err)

	byUser, err := svc.ListAllUserRoles(ctx)
	require.NoError(t, err)
	require.Len(t, byUser, 2)

	require.Equal(t, []string{domain.RoleUser}, byUser[alice.ID])

	// Role names are ordered within each user
	require.Equal(t, []string{domain.RoleAdmin, domain.RoleModerator}, byUser[root.ID])
}

func TestListAllReturnsUsersOldestFirst(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)

	auth := &AuthService{Store: st}
	svc := &UserService{Store: st}

	for _, name := range []string{"alice", "bob", "carol"} {
		_, _, err := auth.Register(ctx, name, "Password123!", nil)
		require.NoError(t, err)
	}

	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, "carol", users[2].Username)
}
