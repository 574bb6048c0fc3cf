package atlassdk

import (
	"context"
	"net/http"
)

// GetFavorites returns the signed-in user's favorite countries, oldest first.
// The result is never nil on success.
func (c *SDKClient) GetFavorites(ctx context.Context) ([]FavoriteEntry, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/favorites", nil)
	if err != nil {
		return nil, err
	}

	var favorites []FavoriteEntry
	if err := decodeJSON(resp, &favorites, http.StatusOK); err != nil {
		return nil, err
	}

	if favorites == nil {
		favorites = []FavoriteEntry{}
	}

	return favorites, nil
}

// ToggleFavorite flips the favorited state of a country. Returns true when
// the country is now favorited, false when it was removed.
func (c *SDKClient) ToggleFavorite(ctx context.Context, req ToggleFavoriteRequest) (bool, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/favorites/toggle", req)
	if err != nil {
		return false, err
	}

	var result ToggleFavoriteResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return false, err
	}

	return result.Added, nil
}
