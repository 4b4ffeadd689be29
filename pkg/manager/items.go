package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mediasort/mediasort/pkg/library"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
)

// ListMediaItems lists stored items, newest first.
func (m *MediaManager) ListMediaItems(ctx context.Context, filter storage.MediaItemFilter) ([]*storage.MediaItem, error) {
	return m.storage.ListMediaItems(ctx, filter)
}

// GetMediaItem fetches one item.
func (m *MediaManager) GetMediaItem(ctx context.Context, id int64) (*storage.MediaItem, error) {
	return m.storage.GetMediaItem(ctx, id)
}

// RescanItem clears an item's enrichment and duplicate state and resets it
// to pending so the next scan reclassifies it from scratch.
func (m *MediaManager) RescanItem(ctx context.Context, id int64) (*storage.MediaItem, error) {
	item, err := m.storage.GetMediaItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if status := storage.ItemStatus(item.Status); status != storage.ItemStatusPending {
		if err := item.Machine().ToState(storage.ItemStatusPending); err != nil {
			return nil, fmt.Errorf("item %d: %s -> pending: %w", id, item.Status, err)
		}
	}

	updated := item.MediaItem
	updated.TmdbID = nil
	updated.TmdbName = nil
	updated.PosterPath = nil
	updated.EpisodeTitle = nil
	updated.DuplicateOf = nil
	updated.DestinationPath = nil
	updated.Status = string(storage.ItemStatusPending)
	// dropping the stored size forces the next scan past the incremental skip
	updated.FileSize = 0

	if err := m.storage.UpdateMediaItem(ctx, updated); err != nil {
		return nil, err
	}

	return m.storage.GetMediaItem(ctx, id)
}

// MediaItemPatch is a manual metadata edit. Nil fields are left alone.
type MediaItemPatch struct {
	DetectedType *string `json:"detectedType"`
	DetectedName *string `json:"detectedName"`
	CleanedName  *string `json:"cleanedName"`
	Year         *int32  `json:"year"`
	Season       *int32  `json:"season"`
	Episode      *int32  `json:"episode"`
	EpisodeEnd   *int32  `json:"episodeEnd"`
	TmdbID       *int32  `json:"tmdbId"`
	TmdbName     *string `json:"tmdbName"`
}

// UpdateMediaItem applies a manual edit. Edited items are locked against
// rescans and treated as fully confident.
func (m *MediaManager) UpdateMediaItem(ctx context.Context, id int64, patch MediaItemPatch) (*storage.MediaItem, error) {
	item, err := m.storage.GetMediaItem(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := item.MediaItem
	if patch.DetectedType != nil {
		updated.DetectedType = *patch.DetectedType
	}
	if patch.DetectedName != nil {
		updated.DetectedName = patch.DetectedName
	}
	if patch.CleanedName != nil {
		updated.CleanedName = patch.CleanedName
	}
	if patch.Year != nil {
		updated.Year = patch.Year
	}
	if patch.Season != nil {
		updated.Season = patch.Season
	}
	if patch.Episode != nil {
		updated.Episode = patch.Episode
	}
	if patch.EpisodeEnd != nil {
		updated.EpisodeEnd = patch.EpisodeEnd
	}
	if patch.TmdbID != nil {
		updated.TmdbID = patch.TmdbID
	}
	if patch.TmdbName != nil {
		updated.TmdbName = patch.TmdbName
	}

	updated.ManualOverride = true
	updated.Confidence = 100

	if err := m.storage.UpdateMediaItem(ctx, updated); err != nil {
		return nil, err
	}

	return m.storage.GetMediaItem(ctx, id)
}

// DeleteMediaItem removes an item row. Only users delete items; the engine
// never does.
func (m *MediaManager) DeleteMediaItem(ctx context.Context, id int64) error {
	return m.storage.DeleteMediaItem(ctx, id)
}

// GetStats aggregates the item set.
func (m *MediaManager) GetStats(ctx context.Context) (storage.Stats, error) {
	return m.storage.GetStats(ctx)
}

// GetScanJob fetches one scan job.
func (m *MediaManager) GetScanJob(ctx context.Context, id int64) (*storage.ScanJob, error) {
	return m.storage.GetScanJob(ctx, id)
}

// GetLatestScanJob fetches the most recent scan job.
func (m *MediaManager) GetLatestScanJob(ctx context.Context) (*storage.ScanJob, error) {
	return m.storage.GetLatestScanJob(ctx)
}

// GetOrganizeJob fetches one organize job.
func (m *MediaManager) GetOrganizeJob(ctx context.Context, id int64) (*storage.OrganizeJob, error) {
	return m.storage.GetOrganizeJob(ctx, id)
}

// GetLatestOrganizeJob fetches the most recent organize job.
func (m *MediaManager) GetLatestOrganizeJob(ctx context.Context) (*storage.OrganizeJob, error) {
	return m.storage.GetLatestOrganizeJob(ctx)
}

// ListOrganizationLogs lists audit rows, newest first.
func (m *MediaManager) ListOrganizationLogs(ctx context.Context, limit int) ([]*model.OrganizationLog, error) {
	return m.storage.ListOrganizationLogs(ctx, limit)
}

// ListMovieRecords lists the aggregated movie projections.
func (m *MediaManager) ListMovieRecords(ctx context.Context) ([]*model.Movie, error) {
	return m.storage.ListMovieRecords(ctx)
}

// ListTvSeriesRecords lists the aggregated series projections.
func (m *MediaManager) ListTvSeriesRecords(ctx context.Context) ([]*model.TvSeries, error) {
	return m.storage.ListTvSeriesRecords(ctx)
}

// BrowseEntry is one directory in a filesystem browse listing.
type BrowseEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var ErrBrowseForbidden = fmt.Errorf("path is outside the allowed roots")

// Browse lists the sub-directories of a path, restricted to the configured
// allow-list of root prefixes. Paths outside it are rejected before any
// filesystem access.
func (m *MediaManager) Browse(ctx context.Context, path string) ([]BrowseEntry, error) {
	cleaned := filepath.Clean(path)
	if !filepath.IsAbs(cleaned) {
		return nil, ErrBrowseForbidden
	}

	allowed := false
	for _, root := range m.browseRoots {
		if library.IsWithin(root, cleaned) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrBrowseForbidden
	}

	entries, err := m.fileIO.ReadDir(cleaned)
	if err != nil {
		return nil, err
	}

	dirs := make([]BrowseEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dirs = append(dirs, BrowseEntry{
			Name: entry.Name(),
			Path: filepath.Join(cleaned, entry.Name()),
		})
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })

	return dirs, nil
}
