package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlaspin/atlaspin/internal/api/store"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled for this user")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this user")
)

type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name shown in authenticator apps
}

// Enroll generates a TOTP secret for the user and stores it pending. MFA is
// not active until the user proves possession via Activate.
func (s *MFAService) Enroll(ctx context.Context, userID string) (secret, otpauthURL string, err error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load user: %w", err)
	}
	if user.MFAEnabled != nil {
		return "", "", ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return "", "", fmt.Errorf("failed to store MFA secret: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// Activate verifies a TOTP code against the pending secret and enables MFA.
func (s *MFAService) Activate(ctx context.Context, userID string, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if user.MFAEnabled != nil {
		return ErrMFAAlreadyEnabled
	}

	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Users().EnableMFA(ctx, userID)
}

// Disable clears the user's TOTP secret and enabled flag.
func (s *MFAService) Disable(ctx context.Context, userID string) error {
	return s.Store.Users().DisableMFA(ctx, userID)
}
