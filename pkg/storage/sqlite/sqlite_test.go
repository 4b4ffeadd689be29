package sqlite

import (
	"context"
	"testing"

	"github.com/mediasort/mediasort/pkg/machine"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()

	store, err := New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Init(context.Background()))

	return store
}

func strPtr(s string) *string { return &s }
func i32Ptr(v int32) *int32   { return &v }

func TestMediaItemRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item := model.MediaItem{
		OriginalFilename: "Inception.2010.1080p.mkv",
		OriginalPath:     "/in",
		FileSize:         4096,
		Extension:        "mkv",
		DetectedType:     "movie",
		CleanedName:      strPtr("Inception"),
		Year:             i32Ptr(2010),
		Confidence:       60,
		Status:           "pending",
	}

	id, err := store.CreateMediaItem(ctx, item)
	require.NoError(t, err)

	got, err := store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Inception.2010.1080p.mkv", got.OriginalFilename)
	assert.Equal(t, int64(4096), got.FileSize)
	require.NotNil(t, got.Year)
	assert.Equal(t, int32(2010), *got.Year)
	assert.False(t, got.CreatedAt.IsZero())

	byPath, err := store.GetMediaItemByPath(ctx, "/in", "Inception.2010.1080p.mkv")
	require.NoError(t, err)
	assert.Equal(t, got.ID, byPath.ID)

	_, err = store.GetMediaItemByPath(ctx, "/in", "missing.mkv")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMediaItemFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.CreateMediaItem(ctx, model.MediaItem{
		OriginalFilename: "a.mkv", OriginalPath: "/in", Extension: "mkv",
		DetectedType: "movie", CleanedName: strPtr("Inception"),
		Confidence: 80, Status: "organized",
	})
	require.NoError(t, err)

	_, err = store.CreateMediaItem(ctx, model.MediaItem{
		OriginalFilename: "b.mkv", OriginalPath: "/in", Extension: "mkv",
		DetectedType: "tv_show", CleanedName: strPtr("Fallout"),
		Confidence: 30, Status: "pending", DuplicateOf: i32Ptr(int32(first)),
	})
	require.NoError(t, err)

	movieType := "movie"
	items, err := store.ListMediaItems(ctx, storage.MediaItemFilter{DetectedType: &movieType})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a.mkv", items[0].OriginalFilename)

	pending := storage.ItemStatusPending
	items, err = store.ListMediaItems(ctx, storage.MediaItemFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b.mkv", items[0].OriginalFilename)

	search := "fall"
	items, err = store.ListMediaItems(ctx, storage.MediaItemFilter{Search: &search})
	require.NoError(t, err)
	require.Len(t, items, 1)

	below := int32(50)
	items, err = store.ListMediaItems(ctx, storage.MediaItemFilter{ConfidenceBelow: &below})
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = store.ListMediaItems(ctx, storage.MediaItemFilter{DuplicatesOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)

	primaries, err := store.ListPrimaryItems(ctx, "movie")
	require.NoError(t, err)
	require.Len(t, primaries, 1)
}

func TestMediaItemStatusTransitions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateMediaItem(ctx, model.MediaItem{
		OriginalFilename: "a.mkv", OriginalPath: "/in", Extension: "mkv",
		DetectedType: "movie", Status: "pending",
	})
	require.NoError(t, err)

	destination := "/movies/A (2020)/A (2020).mkv"
	require.NoError(t, store.UpdateMediaItemStatus(ctx, id, storage.ItemStatusOrganized, &destination))

	got, err := store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "organized", got.Status)
	require.NotNil(t, got.DestinationPath)

	// organized -> skipped is not a legal move
	err = store.UpdateMediaItemStatus(ctx, id, storage.ItemStatusSkipped, nil)
	assert.ErrorIs(t, err, machine.ErrInvalidTransition)

	// undo resets to pending and clears the destination
	require.NoError(t, store.UpdateMediaItemStatus(ctx, id, storage.ItemStatusPending, nil))
	got, err = store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.DestinationPath)
}

func TestScanJobLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateScanJob(ctx, model.ScanJob{Status: "running"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateScanJobProgress(ctx, model.ScanJob{
		ID: int32(id), TotalFiles: 10, ProcessedFiles: 4, NewItems: 2, ErrorsCount: 1,
		CurrentFolder: strPtr("/in/shows"),
	}))

	job, err := store.GetScanJob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int32(10), job.TotalFiles)
	assert.Equal(t, int32(4), job.ProcessedFiles)
	assert.Nil(t, job.CompletedAt)

	require.NoError(t, store.UpdateScanJobStatus(ctx, id, storage.JobStatusCompleted, nil))

	job, err = store.GetScanJob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "completed", job.Status)
	require.NotNil(t, job.CompletedAt)

	// terminal states are final
	err = store.UpdateScanJobStatus(ctx, id, storage.JobStatusRunning, nil)
	assert.ErrorIs(t, err, machine.ErrInvalidTransition)

	latest, err := store.GetLatestScanJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ID, latest.ID)
}

func TestOrganizeJobLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateOrganizeJob(ctx, model.OrganizeJob{Status: "running", TotalFiles: 3})
	require.NoError(t, err)

	msg := "store unavailable"
	require.NoError(t, store.UpdateOrganizeJobStatus(ctx, id, storage.JobStatusFailed, &msg))

	job, err := store.GetOrganizeJob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "failed", job.Status)
	require.NotNil(t, job.Error)
	assert.Equal(t, msg, *job.Error)
}

func TestSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.GetSettings(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.UpdateSettings(ctx, model.Settings{
		TmdbAPIKey: "key", MoviesRoot: "/movies", TvRoot: "/tv",
	}))

	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "key", got.TmdbAPIKey)

	require.NoError(t, store.UpdateSettings(ctx, model.Settings{
		TmdbAPIKey: "rotated", MoviesRoot: "/movies", TvRoot: "/tv", AutoOrganize: true,
	}))

	got, err = store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.TmdbAPIKey)
	assert.True(t, got.AutoOrganize)
}

func TestTvSeriesIncrement(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	series := model.TvSeries{TmdbID: i32Ptr(106379), Name: "Fallout"}
	require.NoError(t, store.IncrementTvSeriesEpisodes(ctx, series))
	require.NoError(t, store.IncrementTvSeriesEpisodes(ctx, series))

	records, err := store.ListTvSeriesRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int32(2), records[0].EpisodeCount)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.CreateMediaItem(ctx, model.MediaItem{
		OriginalFilename: "a.mkv", OriginalPath: "/in", Extension: "mkv",
		DetectedType: "movie", Status: "organized", FileSize: 100,
	})
	require.NoError(t, err)

	_, err = store.CreateMediaItem(ctx, model.MediaItem{
		OriginalFilename: "b.mkv", OriginalPath: "/in", Extension: "mkv",
		DetectedType: "tv_show", Status: "pending", FileSize: 50,
		DuplicateOf: i32Ptr(int32(first)),
	})
	require.NoError(t, err)

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Organized)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, stats.Movies)
	assert.Equal(t, 1, stats.TVShows)
	assert.Equal(t, 150, stats.TotalBytes)
}

func TestOrganizationLogs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateOrganizationLog(ctx, model.OrganizationLog{
		Action: "move", SourcePath: "/in/a.mkv", DestinationPath: strPtr("/movies/a.mkv"),
	})
	require.NoError(t, err)

	errMsg := "rename failed"
	_, err = store.CreateOrganizationLog(ctx, model.OrganizationLog{
		Action: "error", SourcePath: "/in/b.mkv", Error: &errMsg,
	})
	require.NoError(t, err)

	logs, err := store.ListOrganizationLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// newest first
	assert.Equal(t, "error", logs[0].Action)
	assert.Equal(t, "move", logs[1].Action)
}
