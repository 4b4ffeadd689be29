package manager

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/mediasort/mediasort/pkg/events"
	mio "github.com/mediasort/mediasort/pkg/io"
	ioMocks "github.com/mediasort/mediasort/pkg/io/mocks"
	probeMocks "github.com/mediasort/mediasort/pkg/probe/mocks"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/tmdb"
	tmdbMocks "github.com/mediasort/mediasort/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type organizeHarness struct {
	manager *MediaManager
	store   storage.Storage
	bus     *events.Bus
	srcDir  string
	movies  string
	tv      string
}

func newOrganizeHarness(t *testing.T) *organizeHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	h := &organizeHarness{
		store:  newTestStore(t),
		bus:    events.NewBus(),
		srcDir: filepath.Join(root, "in"),
		movies: filepath.Join(root, "movies"),
		tv:     filepath.Join(root, "tv"),
	}
	require.NoError(t, os.MkdirAll(h.srcDir, 0o755))

	h.manager = New(
		h.store,
		func(string) tmdb.ClientInterface { return tmdbMocks.NewMockClientInterface(ctrl) },
		probeMocks.NewMockProber(ctrl),
		&mio.MediaFileSystem{},
		h.bus,
	)

	require.NoError(t, h.manager.UpdateSettings(context.Background(), Settings{
		SourceFolders: []SourceFolder{{Type: FolderMixed, Path: h.srcDir}},
		MoviesRoot:    h.movies,
		TvRoot:        h.tv,
	}))

	return h
}

func (h *organizeHarness) writeSource(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(h.srcDir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func (h *organizeHarness) insertItem(t *testing.T, item model.MediaItem) int64 {
	t.Helper()
	if item.Status == "" {
		item.Status = string(storage.ItemStatusPending)
	}
	id, err := h.store.CreateMediaItem(context.Background(), item)
	require.NoError(t, err)
	return id
}

func (h *organizeHarness) runOrganize(t *testing.T, ids []int64) *storage.OrganizeJob {
	t.Helper()
	ctx := context.Background()

	sub := h.bus.Subscribe()
	defer h.bus.Unsubscribe(sub)

	jobID, err := h.manager.StartOrganize(ctx, ids)
	require.NoError(t, err)

	status := waitForDone(t, sub, events.TypeOrganizeDone)
	assert.Equal(t, string(storage.JobStatusCompleted), status)

	job, err := h.store.GetOrganizeJob(ctx, jobID)
	require.NoError(t, err)
	return job
}

func movieItem(dir, filename string, size int64) model.MediaItem {
	name := "Inception"
	year := int32(2010)
	return model.MediaItem{
		OriginalFilename: filename,
		OriginalPath:     dir,
		FileSize:         size,
		Extension:        "mkv",
		DetectedType:     "movie",
		CleanedName:      &name,
		Year:             &year,
	}
}

func TestOrganizeMovesMovie(t *testing.T) {
	ctx := context.Background()
	h := newOrganizeHarness(t)

	source := h.writeSource(t, "Inception.2010.1080p.mkv", 4096)
	id := h.insertItem(t, movieItem(h.srcDir, "Inception.2010.1080p.mkv", 4096))

	job := h.runOrganize(t, []int64{id})
	assert.Equal(t, int32(1), job.SuccessCount)
	assert.Equal(t, int32(0), job.FailedCount)

	want := filepath.Join(h.movies, "Inception (2010)", "Inception (2010).mkv")
	assert.FileExists(t, want)
	assert.NoFileExists(t, source)

	item, err := h.store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(storage.ItemStatusOrganized), item.Status)
	require.NotNil(t, item.DestinationPath)
	assert.Equal(t, want, *item.DestinationPath)

	logs, err := h.store.ListOrganizationLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, logActionMove, logs[0].Action)
}

func TestOrganizeMovesMultiEpisode(t *testing.T) {
	h := newOrganizeHarness(t)

	h.writeSource(t, "Friends.S01E01E02.720p.mkv", 2048)

	name := "Friends"
	season, episode, episodeEnd := int32(1), int32(1), int32(2)
	id := h.insertItem(t, model.MediaItem{
		OriginalFilename: "Friends.S01E01E02.720p.mkv",
		OriginalPath:     h.srcDir,
		FileSize:         2048,
		Extension:        "mkv",
		DetectedType:     "tv_show",
		CleanedName:      &name,
		Season:           &season,
		Episode:          &episode,
		EpisodeEnd:       &episodeEnd,
	})

	job := h.runOrganize(t, []int64{id})
	assert.Equal(t, int32(1), job.SuccessCount)

	assert.FileExists(t, filepath.Join(h.tv, "Friends", "Season 01", "Friends - S01E01-E02.mkv"))
}

func TestOrganizeSkipsIdenticalSizeCollision(t *testing.T) {
	ctx := context.Background()
	h := newOrganizeHarness(t)

	source := h.writeSource(t, "Inception.2010.1080p.mkv", 4096)
	id := h.insertItem(t, movieItem(h.srcDir, "Inception.2010.1080p.mkv", 4096))

	// plant an identical-size file at the planned destination
	destination := filepath.Join(h.movies, "Inception (2010)", "Inception (2010).mkv")
	require.NoError(t, os.MkdirAll(filepath.Dir(destination), 0o755))
	require.NoError(t, os.WriteFile(destination, make([]byte, 4096), 0o644))

	job := h.runOrganize(t, []int64{id})
	assert.Equal(t, int32(1), job.SuccessCount)
	assert.Equal(t, int32(0), job.FailedCount)

	// neither file was touched
	assert.FileExists(t, source)
	assert.FileExists(t, destination)

	item, err := h.store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(storage.ItemStatusSkipped), item.Status)

	logs, err := h.store.ListOrganizationLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, logActionSkip, logs[0].Action)
}

func TestOrganizeRenamesOnDifferentSizeCollision(t *testing.T) {
	h := newOrganizeHarness(t)

	h.writeSource(t, "Inception.2010.1080p.mkv", 4096)
	id := h.insertItem(t, movieItem(h.srcDir, "Inception.2010.1080p.mkv", 4096))

	destination := filepath.Join(h.movies, "Inception (2010)", "Inception (2010).mkv")
	require.NoError(t, os.MkdirAll(filepath.Dir(destination), 0o755))
	require.NoError(t, os.WriteFile(destination, make([]byte, 100), 0o644))

	job := h.runOrganize(t, []int64{id})
	assert.Equal(t, int32(1), job.SuccessCount)

	assert.FileExists(t, filepath.Join(h.movies, "Inception (2010)", "Inception (2010) (copy 2).mkv"))
}

func TestOrganizeSkipsSeasonPacksAndNonPending(t *testing.T) {
	ctx := context.Background()
	h := newOrganizeHarness(t)

	h.writeSource(t, "pack.mkv", 10)
	pack := movieItem(h.srcDir, "pack.mkv", 10)
	pack.IsSeasonPack = true
	packID := h.insertItem(t, pack)

	organized := movieItem(h.srcDir, "done.mkv", 10)
	organized.Status = string(storage.ItemStatusOrganized)
	doneID := h.insertItem(t, organized)

	job := h.runOrganize(t, []int64{packID, doneID})
	assert.Equal(t, int32(2), job.ProcessedFiles)
	assert.Equal(t, int32(0), job.SuccessCount)
	assert.Equal(t, int32(0), job.FailedCount)

	item, err := h.store.GetMediaItem(ctx, packID)
	require.NoError(t, err)
	assert.Equal(t, string(storage.ItemStatusPending), item.Status)
}

func TestOrganizeGuardsDestinationInsideSource(t *testing.T) {
	ctx := context.Background()
	h := newOrganizeHarness(t)

	// destination root inside the item's own directory
	require.NoError(t, h.manager.UpdateSettings(ctx, Settings{
		SourceFolders: []SourceFolder{{Type: FolderMixed, Path: h.srcDir}},
		MoviesRoot:    filepath.Join(h.srcDir, "organized"),
	}))

	source := h.writeSource(t, "Inception.2010.1080p.mkv", 4096)
	id := h.insertItem(t, movieItem(h.srcDir, "Inception.2010.1080p.mkv", 4096))

	job := h.runOrganize(t, []int64{id})
	assert.Equal(t, int32(1), job.FailedCount)

	assert.FileExists(t, source)

	item, err := h.store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(storage.ItemStatusError), item.Status)

	logs, err := h.store.ListOrganizationLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, logActionError, logs[0].Action)
}

func TestOrganizeMissingRootFailsItem(t *testing.T) {
	ctx := context.Background()
	h := newOrganizeHarness(t)

	// only the tv root is configured; the movie item has nowhere to go
	require.NoError(t, h.manager.UpdateSettings(ctx, Settings{
		SourceFolders: []SourceFolder{{Type: FolderMixed, Path: h.srcDir}},
		TvRoot:        h.tv,
	}))

	h.writeSource(t, "Inception.2010.1080p.mkv", 4096)
	id := h.insertItem(t, movieItem(h.srcDir, "Inception.2010.1080p.mkv", 4096))

	job := h.runOrganize(t, []int64{id})
	assert.Equal(t, int32(1), job.FailedCount)

	item, err := h.store.GetMediaItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(storage.ItemStatusError), item.Status)
}

func TestStartOrganizeRequiresDestinationRoots(t *testing.T) {
	h := newOrganizeHarness(t)

	require.NoError(t, h.manager.UpdateSettings(context.Background(), Settings{
		SourceFolders: []SourceFolder{{Type: FolderMixed, Path: h.srcDir}},
	}))

	_, err := h.manager.StartOrganize(context.Background(), []int64{1})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUndoOrganize(t *testing.T) {
	ctx := context.Background()
	h := newOrganizeHarness(t)

	source := h.writeSource(t, "Inception.2010.1080p.mkv", 4096)
	id := h.insertItem(t, movieItem(h.srcDir, "Inception.2010.1080p.mkv", 4096))

	h.runOrganize(t, []int64{id})
	destination := filepath.Join(h.movies, "Inception (2010)", "Inception (2010).mkv")
	require.FileExists(t, destination)

	item, err := h.manager.UndoOrganize(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, string(storage.ItemStatusPending), item.Status)
	assert.Nil(t, item.DestinationPath)
	assert.FileExists(t, source)
	assert.NoFileExists(t, destination)
}

func TestMoveFileCrossDeviceFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileIO := ioMocks.NewMockFileIO(ctrl)

	bus := events.NewBus()
	m := New(
		newTestStore(t),
		func(string) tmdb.ClientInterface { return tmdbMocks.NewMockClientInterface(ctrl) },
		probeMocks.NewMockProber(ctrl),
		fileIO,
		bus,
	)

	source := "/in/movie.mkv"
	destination := "/movies/Movie (2010)/Movie (2010).mkv"
	temp := destination + ".tmp"

	exdev := &os.LinkError{Op: "rename", Old: source, New: temp, Err: syscall.EXDEV}

	gomock.InOrder(
		fileIO.EXPECT().MkdirAll(filepath.Dir(destination), os.FileMode(0o755)).Return(nil),
		fileIO.EXPECT().Rename(source, temp).Return(exdev),
		fileIO.EXPECT().Copy(source, temp).Return(int64(4096), nil),
		fileIO.EXPECT().Stat(source).Return(fakeInfo{size: 4096}, nil),
		fileIO.EXPECT().Stat(temp).Return(fakeInfo{size: 4096}, nil),
		fileIO.EXPECT().Remove(source).Return(nil),
		fileIO.EXPECT().Rename(temp, destination).Return(nil),
	)

	require.NoError(t, m.moveFile(source, destination))
}

func TestMoveFileCrossDeviceVerificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileIO := ioMocks.NewMockFileIO(ctrl)

	m := New(
		newTestStore(t),
		func(string) tmdb.ClientInterface { return tmdbMocks.NewMockClientInterface(ctrl) },
		probeMocks.NewMockProber(ctrl),
		fileIO,
		events.NewBus(),
	)

	source := "/in/movie.mkv"
	destination := "/movies/Movie (2010)/Movie (2010).mkv"
	temp := destination + ".tmp"

	exdev := &os.LinkError{Op: "rename", Old: source, New: temp, Err: syscall.EXDEV}

	gomock.InOrder(
		fileIO.EXPECT().MkdirAll(filepath.Dir(destination), os.FileMode(0o755)).Return(nil),
		fileIO.EXPECT().Rename(source, temp).Return(exdev),
		fileIO.EXPECT().Copy(source, temp).Return(int64(1000), nil),
		fileIO.EXPECT().Stat(source).Return(fakeInfo{size: 4096}, nil),
		fileIO.EXPECT().Stat(temp).Return(fakeInfo{size: 1000}, nil),
		// the partial copy is cleaned up and the source is left alone
		fileIO.EXPECT().Remove(temp).Return(nil),
	)

	err := m.moveFile(source, destination)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification")
}

type fakeInfo struct {
	os.FileInfo
	size int64
}

func (f fakeInfo) Size() int64 { return f.size }
