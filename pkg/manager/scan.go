package manager

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mediasort/mediasort/pkg/events"
	"github.com/mediasort/mediasort/pkg/library"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/parse"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/tmdb"
	"go.uber.org/zap"
)

const catalogMatchBonus = 20

// StartScan begins a scan over every configured source folder and returns
// the job id. The scan itself runs as a background task; progress is
// observable through the store and the event bus.
func (m *MediaManager) StartScan(ctx context.Context) (int64, error) {
	settings, err := m.Settings(ctx)
	if err != nil {
		return 0, err
	}

	if len(settings.SourceFolders) == 0 {
		return 0, ErrNotConfigured
	}

	if !m.coordinator.acquireScan() {
		return 0, ErrAlreadyRunning
	}

	jobID, err := m.storage.CreateScanJob(ctx, model.ScanJob{Status: string(storage.JobStatusRunning)})
	if err != nil {
		m.coordinator.releaseScan()
		return 0, err
	}

	log := logger.FromCtx(ctx).With(zap.Int64("scanJob", jobID))
	go m.runScan(logger.WithCtx(context.Background(), log), jobID, settings)

	return jobID, nil
}

type scanProgress struct {
	jobID         int64
	totalFiles    int
	processed     int
	newItems      int
	errors        int
	currentFolder string
}

func (m *MediaManager) runScan(ctx context.Context, jobID int64, settings Settings) {
	log := logger.FromCtx(ctx)
	defer m.coordinator.releaseScan()

	progress := &scanProgress{jobID: jobID}
	err := m.scan(ctx, settings, progress)

	status := storage.JobStatusCompleted
	var errMsg *string
	if err != nil {
		log.Error("scan failed", zap.Error(err))
		status = storage.JobStatusFailed
		msg := err.Error()
		errMsg = &msg
	}

	if err := m.storage.UpdateScanJobStatus(ctx, jobID, status, errMsg); err != nil {
		log.Error("failed to finalize scan job", zap.Error(err))
	}

	m.bus.Publish(events.Event{
		Type: events.TypeScanDone,
		Data: events.ScanDone{JobID: jobID, Status: string(status)},
	})

	if err == nil && settings.AutoOrganize {
		m.autoOrganize(ctx, settings)
	}
}

// scan runs the two traversal passes. Per-file problems are counted and
// skipped; only store failures surface as job errors.
func (m *MediaManager) scan(ctx context.Context, settings Settings, progress *scanProgress) error {
	log := logger.FromCtx(ctx)
	catalog := m.tmdbFactory(settings.TMDBAPIKey)

	// first pass: count supported files so progress has a denominator
	for _, folder := range settings.SourceFolders {
		m.walkFolder(ctx, folder, progress, func(string, string, fs.DirEntry) {
			progress.totalFiles++
		})
	}

	if err := m.persistScanProgress(ctx, progress); err != nil {
		return err
	}

	// second pass: process every supported file
	for _, folder := range settings.SourceFolders {
		var walkErr error

		m.walkFolder(ctx, folder, progress, func(dir, name string, d fs.DirEntry) {
			if walkErr != nil {
				return
			}

			if err := m.processFile(ctx, catalog, folder, dir, name, d, progress); err != nil {
				walkErr = err
				return
			}

			progress.processed++
			progress.currentFolder = dir

			if err := m.persistScanProgress(ctx, progress); err != nil {
				walkErr = err
				return
			}

			m.bus.Publish(events.Event{
				Type: events.TypeScanProgress,
				Data: events.ScanProgress{
					JobID:          progress.jobID,
					TotalFiles:     progress.totalFiles,
					ProcessedFiles: progress.processed,
					CurrentFolder:  progress.currentFolder,
					NewItems:       progress.newItems,
					ErrorsCount:    progress.errors,
				},
			})
		})

		if walkErr != nil {
			return walkErr
		}
	}

	log.Infow("scan finished",
		"totalFiles", progress.totalFiles,
		"newItems", progress.newItems,
		"errors", progress.errors,
	)

	return nil
}

// walkFolder traverses one source root, invoking visit for every supported
// media file. Hidden entries and symlinks are skipped; unreadable entries and
// traversal violations count as errors without aborting.
func (m *MediaManager) walkFolder(ctx context.Context, folder SourceFolder, progress *scanProgress, visit func(dir, name string, d fs.DirEntry)) {
	log := logger.FromCtx(ctx)
	root := filepath.Clean(folder.Path)
	fsys := m.fsFactory(root)

	err := m.fileIO.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugw("unreadable entry", "path", path, "error", err)
			progress.errors++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()
		if path != "." && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		abs := filepath.Join(root, path)
		if !library.IsWithin(root, abs) {
			log.Warnw("path escapes source root", "path", abs, "root", root)
			progress.errors++
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !library.IsVideoFile(name) {
			return nil
		}

		visit(filepath.Dir(abs), name, d)
		return nil
	})

	if err != nil {
		log.Warnw("walk aborted", "root", root, "error", err)
		progress.errors++
	}
}

// processFile reconciles a single file into the store. It returns an error
// only for store failures; anything per-file is counted and skipped.
func (m *MediaManager) processFile(ctx context.Context, catalog tmdb.ClientInterface, folder SourceFolder, dir, name string, d fs.DirEntry, progress *scanProgress) error {
	log := logger.FromCtx(ctx)

	info, err := d.Info()
	if err != nil {
		log.Debugw("failed to stat file", "path", filepath.Join(dir, name), "error", err)
		progress.errors++
		return nil
	}
	size := info.Size()

	existing, err := m.storage.GetMediaItemByPath(ctx, dir, name)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	// unchanged files short-circuit so rescans are cheap and stable
	if existing != nil && existing.FileSize == size {
		return nil
	}

	if existing != nil && existing.ManualOverride {
		return m.storage.UpdateMediaItemFileSize(ctx, int64(existing.ID), size)
	}

	item := m.classify(ctx, catalog, folder, dir, name, size)

	if duplicateOf := m.findDuplicate(ctx, item); duplicateOf != nil {
		item.DuplicateOf = duplicateOf
	}

	if existing == nil {
		if _, err := m.storage.CreateMediaItem(ctx, item); err != nil {
			return err
		}
		progress.newItems++
		log.Debugw("new media item", "file", name, "type", item.DetectedType, "size", humanize.Bytes(uint64(size)))
		return nil
	}

	item.ID = existing.ID
	item.Status = existing.Status
	item.DestinationPath = existing.DestinationPath
	return m.storage.UpdateMediaItem(ctx, item)
}

// classify parses, enriches, and probes one file into a media item row.
func (m *MediaManager) classify(ctx context.Context, catalog tmdb.ClientInterface, folder SourceFolder, dir, name string, size int64) model.MediaItem {
	parsed := parse.Parse(name, filepath.Base(dir))

	// tagged roots override whatever the filename suggested
	switch folder.Type {
	case FolderMovies:
		parsed.DetectedType = parse.TypeMovie
	case FolderTV:
		parsed.DetectedType = parse.TypeTVShow
	}

	item := model.MediaItem{
		OriginalFilename: name,
		OriginalPath:     dir,
		FileSize:         size,
		Extension:        library.Extension(name),
		DetectedType:     string(parsed.DetectedType),
		DetectedName:     optString(parsed.DetectedName),
		CleanedName:      optString(parsed.CleanedName),
		Year:             intToInt32(parsed.Year),
		Season:           intToInt32(parsed.Season),
		Episode:          intToInt32(parsed.Episode),
		EpisodeEnd:       intToInt32(parsed.EpisodeEnd),
		IsSeasonPack:     parsed.IsSeasonPack,
		Confidence:       int32(parsed.Confidence),
		Status:           string(storage.ItemStatusPending),
	}

	m.enrich(ctx, catalog, parsed, &item)

	item.Duration = intToInt32(m.prober.Duration(ctx, filepath.Join(dir, name)))

	return item
}

// enrich augments an item with catalog metadata. Lookup failures degrade to
// no match; a returned year beats the parsed year.
func (m *MediaManager) enrich(ctx context.Context, catalog tmdb.ClientInterface, parsed parse.ParsedMedia, item *model.MediaItem) {
	log := logger.FromCtx(ctx)

	if parsed.CleanedName == "" {
		return
	}

	switch parse.MediaType(item.DetectedType) {
	case parse.TypeMovie:
		result, err := catalog.SearchMovie(ctx, parsed.CleanedName, parsed.Year)
		if err != nil {
			log.Debugw("movie lookup failed", "name", parsed.CleanedName, "error", err)
			return
		}
		if result == nil {
			return
		}

		id := int32(result.ID)
		item.TmdbID = &id
		item.TmdbName = optString(result.Title)
		item.PosterPath = optString(result.PosterPath)
		if result.Year != nil {
			item.Year = intToInt32(result.Year)
		}
		item.Confidence = capConfidence(item.Confidence + catalogMatchBonus)

	case parse.TypeTVShow:
		result, err := catalog.SearchTV(ctx, parsed.CleanedName)
		if err != nil {
			log.Debugw("tv lookup failed", "name", parsed.CleanedName, "error", err)
			return
		}
		if result == nil {
			return
		}

		id := int32(result.ID)
		item.TmdbID = &id
		item.TmdbName = optString(result.Name)
		item.PosterPath = optString(result.PosterPath)
		item.Confidence = capConfidence(item.Confidence + catalogMatchBonus)

		if parsed.Season != nil && parsed.Episode != nil {
			title, err := catalog.GetEpisodeTitle(ctx, result.ID, *parsed.Season, *parsed.Episode)
			if err != nil {
				log.Debugw("episode title lookup failed", "series", parsed.CleanedName, "error", err)
				return
			}
			item.EpisodeTitle = optString(title)
		}
	}
}

func (m *MediaManager) persistScanProgress(ctx context.Context, progress *scanProgress) error {
	return m.storage.UpdateScanJobProgress(ctx, model.ScanJob{
		ID:             int32(progress.jobID),
		TotalFiles:     int32(progress.totalFiles),
		ProcessedFiles: int32(progress.processed),
		NewItems:       int32(progress.newItems),
		ErrorsCount:    int32(progress.errors),
		CurrentFolder:  optString(progress.currentFolder),
	})
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intToInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	converted := int32(*v)
	return &converted
}

func capConfidence(v int32) int32 {
	if v > 100 {
		return 100
	}
	return v
}
