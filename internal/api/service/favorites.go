package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/atlaspin/atlaspin/internal/api/store"
	"github.com/atlaspin/atlaspin/pkg/idx"
)

// toggleAttempts bounds the insert-or-delete retry loop. Each retry means a
// concurrent toggle for the same pair won a race; more than a couple in a
// row is effectively impossible.
const toggleAttempts = 3

type FavoritesService struct {
	Store store.Store
}

// List returns the user's favorites, oldest first. Never nil.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	favorites, err := s.Store.Favorites().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return favorites, nil
}

// Toggle flips the favorited state of (userID, countryCode) and reports
// whether the country is now favorited.
//
// Atomicity does not rely on a prior read: delete-if-present, else insert,
// with the UNIQUE(user_id, country_code) constraint arbitrating races. When
// an insert loses to a concurrent one the loop re-runs, so two simultaneous
// toggles always land on a state some serial order would produce and the
// constraint guarantees at most one row per pair.
func (s *FavoritesService) Toggle(
	ctx context.Context,
	userID, countryCode, countryName, flagURL string,
) (added bool, err error) {
	for attempt := 0; attempt < toggleAttempts; attempt++ {
		removed, err := s.Store.Favorites().Delete(ctx, userID, countryCode)
		if err != nil {
			return false, err
		}
		if removed {
			return false, nil
		}

		err = s.Store.Favorites().Create(ctx, domain.Favorite{
			ID:          idx.New().String(),
			UserID:      userID,
			CountryCode: countryCode,
			CountryName: countryName,
			FlagURL:     flagURL,
		})
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return false, err
		}
		// A concurrent toggle inserted first; ours now acts on the new state.
	}

	return false, fmt.Errorf("favorite toggle contended for user %s country %s", userID, countryCode)
}
