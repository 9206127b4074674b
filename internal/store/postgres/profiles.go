package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
)

const profileColumns = "id, name, location, bio, rating, rating_count"

// ErrProfileNotFound is returned when a profile id does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ListProfiles returns all cultural-connection profiles ordered by id.
func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+profileColumns+" FROM cultural_connections ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	return profiles, nil
}

// GetProfile returns one profile by id.
func (s *Store) GetProfile(ctx context.Context, profileID int64) (*domain.Profile, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT "+profileColumns+" FROM cultural_connections WHERE id = $1", profileID)

	var p domain.Profile
	if err := scanProfile(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateRating applies a new rating through the database function and
// returns the refreshed profile with its recomputed average.
func (s *Store) UpdateRating(ctx context.Context, profileID int64, rating float64) (*domain.Profile, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %v", rating)
	}

	if _, err := s.pool.Exec(ctx, "SELECT update_profile_rating($1, $2)", profileID, rating); err != nil {
		return nil, fmt.Errorf("failed to update profile rating: %w", err)
	}

	return s.GetProfile(ctx, profileID)
}

func scanProfile(row pgx.Row, p *domain.Profile) error {
	if err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Bio, &p.Rating, &p.RatingCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("failed to scan profile: %w", err)
	}
	return nil
}
