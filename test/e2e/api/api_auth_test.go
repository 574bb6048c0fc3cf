package api_test

import (
	"testing"

	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/stretchr/testify/require"
)

// TestSignupSigninSignout walks the whole credential lifecycle against a
// running container.
func TestSignupSigninSignout(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := atlassdk.NewSDKClient(baseURL)
	ctx := t.Context()

	// Register
	created, err := client.Signup(ctx, atlassdk.SignupRequest{
		Username: "alice",
		Password: testPassword,
	})
	require.NoError(t, err, "Signup should succeed")
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{"user"}, created.Roles, "signup defaults to the user role")

	// Registering the same username again must fail
	_, err = client.Signup(ctx, atlassdk.SignupRequest{
		Username: "alice",
		Password: testPassword,
	})
	require.Error(t, err, "duplicate signup should fail")

	// Wrong password is rejected
	_, err = client.Signin(ctx, atlassdk.SigninRequest{
		Username: "alice",
		Password: "not-the-password",
	})
	assertCredentialsRejected(t, err, "signin with wrong password")

	// Correct credentials establish the cookie session
	user, err := client.Signin(ctx, atlassdk.SigninRequest{
		Username: "alice",
		Password: testPassword,
	})
	require.NoError(t, err, "Signin should succeed")
	require.Equal(t, created.ID, user.ID)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)

	// Signout kills the session
	require.NoError(t, client.Signout(ctx))

	_, err = client.Me(ctx)
	assertUnauthenticated(t, err, "profile after signout")

	// Signout is idempotent
	require.NoError(t, client.Signout(ctx))
}

// TestAdminEndpointsRequireRole verifies role-based access control end to end.
func TestAdminEndpointsRequireRole(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := t.Context()

	regular := atlassdk.NewSDKClient(baseURL)
	signupAndSignin(t, regular, "bob")

	_, err := regular.ListUsers(ctx)
	require.Error(t, err, "regular user must not list users")

	var apiErr *atlassdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	admin := atlassdk.NewSDKClient(baseURL)
	signupAndSignin(t, admin, "root", "admin")

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users.Users, 2)

	roles, err := admin.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles.Roles, 3, "user, moderator, and admin are seeded")
}
