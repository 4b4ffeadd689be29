package sqlite

import (
	"context"

	"github.com/mediasort/mediasort/pkg/storage"
)

// GetStats aggregates the item set in a single query
func (s *SQLite) GetStats(ctx context.Context) (storage.Stats, error) {
	// raw SQL since the aggregate shape doesn't map onto a table model
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'organized' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN duplicate_of IS NOT NULL THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN detected_type = 'tv_show' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN detected_type = 'movie' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(file_size), 0)
		FROM media_item
	`)

	var stats storage.Stats
	err := row.Scan(
		&stats.Total,
		&stats.Organized,
		&stats.Pending,
		&stats.Duplicates,
		&stats.Errors,
		&stats.TVShows,
		&stats.Movies,
		&stats.TotalBytes,
	)
	if err != nil {
		return stats, err
	}

	return stats, nil
}
