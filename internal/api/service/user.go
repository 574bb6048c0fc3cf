package service

import (
	"context"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/atlaspin/atlaspin/internal/api/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// GetUserRoles returns the role names assigned to a user.
func (s *UserService) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	return s.Store.Users().GetUserRoles(ctx, userID)
}

// ListAllUserRoles returns role names for every user, keyed by user id.
func (s *UserService) ListAllUserRoles(ctx context.Context) (map[string][]string, error) {
	return s.Store.Users().ListAllUserRoles(ctx)
}

// ListAll returns every user, oldest first.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
