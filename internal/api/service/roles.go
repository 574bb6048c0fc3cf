package service

import (
	"context"
	"log/slog"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/atlaspin/atlaspin/internal/api/store"
	"github.com/atlaspin/atlaspin/pkg/idx"
)

type RolesService struct {
	Store  store.Store
	Logger *slog.Logger
}

// Seed inserts the fixed role set on first startup. Idempotent: when any
// roles already exist the whole step is skipped, so running it twice never
// duplicates or errors. Individual insert failures are logged and the
// remaining roles are still attempted.
func (s *RolesService) Seed(ctx context.Context) error {
	count, err := s.Store.Roles().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.Logger.Debug("roles already seeded", "count", count)
		return nil
	}

	for _, name := range domain.SeedRoleNames {
		err := s.Store.Roles().CreateRole(ctx, domain.Role{
			ID:   idx.New().String(),
			Name: name,
		})
		if err != nil {
			s.Logger.Error("failed to seed role", "role", name, "error", err)
			continue
		}
		s.Logger.Info("seeded role", "role", name)
	}

	return nil
}

// ListAll returns all roles in the system.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}
