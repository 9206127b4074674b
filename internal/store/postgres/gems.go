// Package postgres implements the hidden-gem and profile stores on the
// Supabase Postgres instance. The queries mirror what the site issued
// through the Supabase client: filtered selects, an increment_gem_views
// function, a favorites insert, and an update_profile_rating function.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
)

// Store implements domain.GemStore and domain.ProfileStore.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new store on an established connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const gemColumns = "id, name, state, difficulty, crowd_level, description, image_url, views, created_at"

// ListGems returns gems matching the filter, ordered by id. Empty or "all"
// filter values match everything for that field.
func (s *Store) ListGems(ctx context.Context, filter domain.GemFilter) ([]domain.HiddenGem, error) {
	var (
		conds []string
		args  []any
	)

	addCond := func(column, value string) {
		if value == "" || value == "all" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	addCond("state", filter.State)
	addCond("difficulty", filter.Difficulty)
	addCond("crowd_level", filter.Crowd)

	query := "SELECT " + gemColumns + " FROM hidden_gems"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gems: %w", err)
	}
	defer rows.Close()

	var gems []domain.HiddenGem
	for rows.Next() {
		var g domain.HiddenGem
		if err := rows.Scan(&g.ID, &g.Name, &g.State, &g.Difficulty, &g.CrowdLevel,
			&g.Description, &g.ImageURL, &g.Views, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gem: %w", err)
		}
		gems = append(gems, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gems: %w", err)
	}

	observability.FromContext(ctx).Debug("gems fetched", observability.Int("count", len(gems)))

	return gems, nil
}

// IncrementViews bumps the view counter of one gem via the database
// function the site called over RPC.
func (s *Store) IncrementViews(ctx context.Context, gemID int64) error {
	if _, err := s.pool.Exec(ctx, "SELECT increment_gem_views($1)", gemID); err != nil {
		return fmt.Errorf("failed to increment gem views: %w", err)
	}
	return nil
}

// AddFavorite records a user's favorite for a gem.
func (s *Store) AddFavorite(ctx context.Context, gemID int64, userID string) error {
	if userID == "" {
		userID = "anonymous"
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO gem_favorites (gem_id, user_id) VALUES ($1, $2)",
		gemID, userID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}
