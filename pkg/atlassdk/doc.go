/*
Package atlassdk provides a client SDK for the Atlaspin API.

# Overview

The SDK wraps every public endpoint behind typed methods on SDKClient.
Authentication is cookie-based: Signin stores the HTTP-only session cookie
in the client's jar, and every later call carries it automatically, the
same way a browser would.

	client := atlassdk.NewSDKClient("https://api.example.com")

	// Check service health
	health, err := client.Health(ctx)

	// Register and sign in
	user, err := client.Signup(ctx, atlassdk.SignupRequest{
		Username: "alice",
		Password: "correct-horse-battery-staple",
	})
	user, err = client.Signin(ctx, atlassdk.SigninRequest{
		Username: "alice",
		Password: "correct-horse-battery-staple",
	})

	// Favorites
	favorites, err := client.GetFavorites(ctx)
	added, err := client.ToggleFavorite(ctx, atlassdk.ToggleFavoriteRequest{
		CountryCode: "FR",
		CountryName: "France",
		FlagURL:     "https://flagcdn.com/fr.svg",
	})

	// End the session
	err = client.Signout(ctx)

# MFA

Accounts with MFA enabled must pass a TOTP code at signin:

	enrollment, err := client.EnrollMFA(ctx)
	// show enrollment.OTPAuthURL to the user, then confirm possession:
	err = client.ActivateMFA(ctx, code)

	_, err = client.Signin(ctx, atlassdk.SigninRequest{
		Username: "alice",
		Password: "...",
		TOTPCode: code,
	})

# Error Handling

Failed requests return *APIError carrying the HTTP status and the server's
message body:

	_, err := client.Me(ctx)
	var apiErr *atlassdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// session expired, sign in again
	}

# Concurrency

An SDKClient is safe for concurrent use after signin; the underlying
http.Client and cookie jar handle their own locking. Use one client per
user session.
*/
package atlassdk
