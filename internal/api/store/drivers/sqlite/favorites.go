package sqlite

import (
	"context"
	"time"

	"github.com/atlaspin/atlaspin/internal/api/domain"
)

type favoritesRepo struct {
	db dbtx
}

func (r *favoritesRepo) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, country_code, country_name, flag_url, created_at
		 FROM favorites
		 WHERE user_id = ?
		 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.CountryCode, &f.CountryName, &f.FlagURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *favoritesRepo) Create(ctx context.Context, f domain.Favorite) error {
	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (id, user_id, country_code, country_name, flag_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.UserID, f.CountryCode, f.CountryName, f.FlagURL, createdAt)
	return mapConstraint(err)
}

func (r *favoritesRepo) Delete(ctx context.Context, userID, countryCode string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND country_code = ?`,
		userID, countryCode)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
