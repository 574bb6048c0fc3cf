package atlassdk

// SignupRequest registers a new user. Roles is optional; the server defaults
// to the "user" role when empty.
type SignupRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// SigninRequest authenticates a user. TOTPCode is only required for accounts
// with MFA enabled.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totpCode,omitempty"`
}

// UserResponse describes a user as returned by signup, signin, and profile
// endpoints.
type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// FavoriteEntry is one favorited country.
type FavoriteEntry struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	FlagURL     string `json:"flagUrl"`
}

// ToggleFavoriteRequest flips the favorited state of a country.
type ToggleFavoriteRequest struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	FlagURL     string `json:"flagUrl"`
}

// ToggleFavoriteResponse reports the state after a toggle: added=true means
// the country is now favorited.
type ToggleFavoriteResponse struct {
	Added bool `json:"added"`
}

// MFAEnrollResponse carries the pending TOTP secret and its otpauth URL for
// authenticator apps.
type MFAEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
}

// MFAActivateRequest proves possession of the enrolled TOTP secret.
type MFAActivateRequest struct {
	Code string `json:"code"`
}

// RoleInfo describes one role.
type RoleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListRolesResponse wraps the role list.
type ListRolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}

// ListUsersResponse wraps the admin user list.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
