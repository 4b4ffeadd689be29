package manager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mediasort/mediasort/pkg/events"
	mio "github.com/mediasort/mediasort/pkg/io"
	"github.com/mediasort/mediasort/pkg/library"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/parse"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

const (
	logActionMove  = "move"
	logActionSkip  = "skip"
	logActionError = "error"
)

// StartOrganize begins organizing the given items, in the order supplied,
// and returns the job id. The work runs as a background task.
func (m *MediaManager) StartOrganize(ctx context.Context, ids []int64) (int64, error) {
	settings, err := m.Settings(ctx)
	if err != nil {
		return 0, err
	}

	if settings.MoviesRoot == "" && settings.TvRoot == "" {
		return 0, ErrNotConfigured
	}

	if !m.coordinator.acquireOrganize() {
		return 0, ErrAlreadyRunning
	}

	jobID, err := m.storage.CreateOrganizeJob(ctx, model.OrganizeJob{
		Status:     string(storage.JobStatusRunning),
		TotalFiles: int32(len(ids)),
	})
	if err != nil {
		m.coordinator.releaseOrganize()
		return 0, err
	}

	log := logger.FromCtx(ctx).With(zap.Int64("organizeJob", jobID))
	go m.runOrganize(logger.WithCtx(context.Background(), log), jobID, ids, settings)

	return jobID, nil
}

type organizeProgress struct {
	jobID       int64
	totalFiles  int
	processed   int
	success     int
	failed      int
	currentFile string
}

func (m *MediaManager) runOrganize(ctx context.Context, jobID int64, ids []int64, settings Settings) {
	log := logger.FromCtx(ctx)
	defer m.coordinator.releaseOrganize()

	progress := &organizeProgress{jobID: jobID, totalFiles: len(ids)}
	err := m.organize(ctx, ids, settings, progress)

	status := storage.JobStatusCompleted
	var errMsg *string
	if err != nil {
		log.Error("organize failed", zap.Error(err))
		status = storage.JobStatusFailed
		msg := err.Error()
		errMsg = &msg
	}

	if err := m.storage.UpdateOrganizeJobStatus(ctx, jobID, status, errMsg); err != nil {
		log.Error("failed to finalize organize job", zap.Error(err))
	}

	m.bus.Publish(events.Event{
		Type: events.TypeOrganizeDone,
		Data: events.OrganizeDone{JobID: jobID, Status: string(status)},
	})
}

func (m *MediaManager) organize(ctx context.Context, ids []int64, settings Settings, progress *organizeProgress) error {
	for _, id := range ids {
		m.organizeItem(ctx, id, settings, progress)

		progress.processed++
		if err := m.persistOrganizeProgress(ctx, progress); err != nil {
			return err
		}

		m.bus.Publish(events.Event{
			Type: events.TypeOrganizeProgress,
			Data: events.OrganizeProgress{
				JobID:          progress.jobID,
				TotalFiles:     progress.totalFiles,
				ProcessedFiles: progress.processed,
				CurrentFile:    progress.currentFile,
				SuccessCount:   progress.success,
				FailedCount:    progress.failed,
			},
		})
	}

	return nil
}

// organizeItem executes the destructive plan for one item. Failures are
// recorded on the item and the audit log; they never abort the batch.
func (m *MediaManager) organizeItem(ctx context.Context, id int64, settings Settings, progress *organizeProgress) {
	log := logger.FromCtx(ctx)

	item, err := m.storage.GetMediaItem(ctx, id)
	if err != nil {
		log.Warnw("organize target missing", "id", id, "error", err)
		progress.failed++
		return
	}

	progress.currentFile = item.OriginalFilename

	if storage.ItemStatus(item.Status) != storage.ItemStatusPending || item.IsSeasonPack {
		return
	}

	source := filepath.Join(item.OriginalPath, item.OriginalFilename)

	destination, ok := library.Plan(planRequest(item), settings.MoviesRoot, settings.TvRoot)
	if !ok {
		m.failItem(ctx, item, source, fmt.Errorf("no destination root configured for type %q", item.DetectedType), progress)
		return
	}

	// safety guards fire before anything touches the filesystem
	if source == destination {
		m.failItem(ctx, item, source, errors.New("source and destination are the same path"), progress)
		return
	}
	if library.IsWithin(item.OriginalPath, destination) {
		m.failItem(ctx, item, source, errors.New("destination lies inside the source directory"), progress)
		return
	}

	destination, skipped, err := m.resolveCollision(ctx, item, source, destination, progress)
	if err != nil {
		m.failItem(ctx, item, source, err, progress)
		return
	}
	if skipped {
		return
	}

	if err := m.moveFile(source, destination); err != nil {
		m.failItem(ctx, item, source, err, progress)
		return
	}

	if err := m.storage.UpdateMediaItemStatus(ctx, id, storage.ItemStatusOrganized, &destination); err != nil {
		log.Error("failed to mark item organized", zap.Error(err))
		progress.failed++
		return
	}

	m.appendLog(ctx, item.ID, logActionMove, source, &destination, nil)
	m.recordLibraryEntry(ctx, item)
	progress.success++

	log.Infow("organized", "source", source, "destination", destination)
}

// resolveCollision decides the final destination. An existing file of equal
// size turns the move into a skip; otherwise a free "(copy N)" name is found.
func (m *MediaManager) resolveCollision(ctx context.Context, item *storage.MediaItem, source, destination string, progress *organizeProgress) (string, bool, error) {
	if !m.fileIO.FileExists(destination) {
		return destination, false, nil
	}

	existing, err := m.fileIO.Stat(destination)
	if err == nil && existing.Size() == item.FileSize {
		if err := m.storage.UpdateMediaItemStatus(ctx, int64(item.ID), storage.ItemStatusSkipped, nil); err != nil {
			return "", false, err
		}

		m.appendLog(ctx, item.ID, logActionSkip, source, &destination, nil)
		progress.success++
		return "", true, nil
	}

	ext := filepath.Ext(destination)
	base := strings.TrimSuffix(destination, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (copy %d)%s", base, n, ext)
		if !m.fileIO.FileExists(candidate) {
			return candidate, false, nil
		}
	}
}

// moveFile relocates source to destination with atomic semantics: rename
// into a temp name, falling back to copy+verify+unlink across filesystems,
// then rename the temp onto the final path.
func (m *MediaManager) moveFile(source, destination string) error {
	if err := m.fileIO.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	temp := destination + ".tmp"

	err := m.fileIO.Rename(source, temp)
	if err != nil {
		if !mio.IsCrossDevice(err) {
			return fmt.Errorf("failed to move file: %w", err)
		}

		if _, err := m.fileIO.Copy(source, temp); err != nil {
			return fmt.Errorf("failed to copy across filesystems: %w", err)
		}

		sourceInfo, err := m.fileIO.Stat(source)
		if err != nil {
			m.fileIO.Remove(temp)
			return fmt.Errorf("failed to stat source after copy: %w", err)
		}
		tempInfo, err := m.fileIO.Stat(temp)
		if err != nil {
			m.fileIO.Remove(temp)
			return fmt.Errorf("failed to stat copy: %w", err)
		}
		if sourceInfo.Size() != tempInfo.Size() {
			m.fileIO.Remove(temp)
			return fmt.Errorf("copy verification failed: %d != %d bytes", tempInfo.Size(), sourceInfo.Size())
		}

		if err := m.fileIO.Remove(source); err != nil {
			return fmt.Errorf("failed to remove source after copy: %w", err)
		}
	}

	if err := m.fileIO.Rename(temp, destination); err != nil {
		return fmt.Errorf("failed to finalize move: %w", err)
	}

	return nil
}

// UndoOrganize moves an organized item back to its source location and
// resets it to pending.
func (m *MediaManager) UndoOrganize(ctx context.Context, id int64) (*storage.MediaItem, error) {
	item, err := m.storage.GetMediaItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if storage.ItemStatus(item.Status) != storage.ItemStatusOrganized || item.DestinationPath == nil {
		return nil, fmt.Errorf("item %d is not organized", id)
	}

	destination := *item.DestinationPath
	if !m.fileIO.FileExists(destination) {
		return nil, fmt.Errorf("organized file is missing: %s", destination)
	}

	source := filepath.Join(item.OriginalPath, item.OriginalFilename)
	if err := m.fileIO.MkdirAll(item.OriginalPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to recreate source directory: %w", err)
	}

	if err := m.moveFile(destination, source); err != nil {
		return nil, err
	}

	if err := m.storage.UpdateMediaItemStatus(ctx, id, storage.ItemStatusPending, nil); err != nil {
		return nil, err
	}

	m.appendLog(ctx, item.ID, logActionMove, destination, &source, nil)

	return m.storage.GetMediaItem(ctx, id)
}

// autoOrganize kicks off an organize run over every pending primary after a
// scan when the settings flag asks for it.
func (m *MediaManager) autoOrganize(ctx context.Context, settings Settings) {
	log := logger.FromCtx(ctx)

	pending := storage.ItemStatusPending
	items, err := m.storage.ListMediaItems(ctx, storage.MediaItemFilter{Status: &pending})
	if err != nil {
		log.Warn("auto-organize listing failed", zap.Error(err))
		return
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.DuplicateOf != nil || item.IsSeasonPack {
			continue
		}
		ids = append(ids, int64(item.ID))
	}

	if len(ids) == 0 {
		return
	}

	if _, err := m.StartOrganize(ctx, ids); err != nil && !errors.Is(err, ErrAlreadyRunning) {
		log.Warn("auto-organize failed to start", zap.Error(err))
	}
}

func (m *MediaManager) failItem(ctx context.Context, item *storage.MediaItem, source string, cause error, progress *organizeProgress) {
	log := logger.FromCtx(ctx)
	log.Warnw("organize item failed", "source", source, "error", cause)

	if err := m.storage.UpdateMediaItemStatus(ctx, int64(item.ID), storage.ItemStatusError, nil); err != nil {
		log.Error("failed to mark item errored", zap.Error(err))
	}

	msg := cause.Error()
	m.appendLog(ctx, item.ID, logActionError, source, nil, &msg)
	progress.failed++
}

func (m *MediaManager) appendLog(ctx context.Context, itemID int32, action, source string, destination, errMsg *string) {
	log := logger.FromCtx(ctx)

	_, err := m.storage.CreateOrganizationLog(ctx, model.OrganizationLog{
		MediaItemID:     &itemID,
		Action:          action,
		SourcePath:      source,
		DestinationPath: destination,
		Error:           errMsg,
	})
	if err != nil {
		log.Error("failed to append organization log", zap.Error(err))
	}
}

// recordLibraryEntry maintains the aggregated catalog projections; only
// items with catalog metadata produce records.
func (m *MediaManager) recordLibraryEntry(ctx context.Context, item *storage.MediaItem) {
	log := logger.FromCtx(ctx)

	if item.TmdbID == nil {
		return
	}

	var err error
	switch parse.MediaType(item.DetectedType) {
	case parse.TypeMovie:
		err = m.storage.UpsertMovieRecord(ctx, model.Movie{
			TmdbID:     item.TmdbID,
			Title:      bestName(item.MediaItem),
			Year:       item.Year,
			PosterPath: item.PosterPath,
		})
	case parse.TypeTVShow:
		err = m.storage.IncrementTvSeriesEpisodes(ctx, model.TvSeries{
			TmdbID:     item.TmdbID,
			Name:       bestName(item.MediaItem),
			Year:       item.Year,
			PosterPath: item.PosterPath,
		})
	}

	if err != nil {
		log.Warn("failed to update library record", zap.Error(err))
	}
}

// planRequest prefers the catalog's rendering of the title over the parser's.
func planRequest(item *storage.MediaItem) library.PlanRequest {
	name := ""
	for _, n := range []*string{item.TmdbName, item.CleanedName, item.DetectedName} {
		if n != nil && *n != "" {
			name = *n
			break
		}
	}

	return library.PlanRequest{
		Type:       parse.MediaType(item.DetectedType),
		Name:       name,
		Year:       int32ToInt(item.Year),
		Season:     int32ToInt(item.Season),
		Episode:    int32ToInt(item.Episode),
		EpisodeEnd: int32ToInt(item.EpisodeEnd),
		Extension:  item.Extension,
	}
}

func (m *MediaManager) persistOrganizeProgress(ctx context.Context, progress *organizeProgress) error {
	return m.storage.UpdateOrganizeJobProgress(ctx, model.OrganizeJob{
		ID:             int32(progress.jobID),
		TotalFiles:     int32(progress.totalFiles),
		ProcessedFiles: int32(progress.processed),
		SuccessCount:   int32(progress.success),
		FailedCount:    int32(progress.failed),
		CurrentFile:    optString(progress.currentFile),
	})
}

func int32ToInt(v *int32) *int {
	if v == nil {
		return nil
	}
	converted := int(*v)
	return &converted
}
