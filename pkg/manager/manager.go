// Package manager drives the ingestion pipeline: scanning source trees into
// the store, enriching items against the catalog, detecting duplicates, and
// organizing items into the canonical library layout.
package manager

import (
	"errors"
	"io/fs"
	"os"

	"github.com/mediasort/mediasort/pkg/events"
	mio "github.com/mediasort/mediasort/pkg/io"
	"github.com/mediasort/mediasort/pkg/probe"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/tmdb"
)

var (
	ErrAlreadyRunning = errors.New("a job of this kind is already running")
	ErrNotConfigured  = errors.New("missing required configuration")
)

// TMDBFactory builds a catalog client for an API key. The key lives in the
// settings row and may change between jobs, so clients are built per job.
type TMDBFactory func(apiKey string) tmdb.ClientInterface

// FSFactory opens a filesystem rooted at a source folder path.
type FSFactory func(root string) fs.FS

// defaultBrowseRoots is the allow-list for the filesystem browser.
var defaultBrowseRoots = []string{
	"/", "/mnt", "/media", "/home", "/data", "/opt", "/srv",
	"/storage", "/nas", "/volume1", "/shares",
}

// MediaManager houses the pipeline dependencies.
type MediaManager struct {
	storage     storage.Storage
	tmdbFactory TMDBFactory
	prober      probe.Prober
	fileIO      mio.FileIO
	bus         *events.Bus
	fsFactory   FSFactory
	browseRoots []string
	coordinator *jobCoordinator
}

// Option configures a MediaManager.
type Option func(*MediaManager)

// WithFSFactory overrides how source roots are opened, mostly for tests.
func WithFSFactory(f FSFactory) Option {
	return func(m *MediaManager) {
		m.fsFactory = f
	}
}

// WithBrowseRoots overrides the filesystem browser allow-list.
func WithBrowseRoots(roots []string) Option {
	return func(m *MediaManager) {
		m.browseRoots = roots
	}
}

func New(store storage.Storage, tmdbFactory TMDBFactory, prober probe.Prober, fileIO mio.FileIO, bus *events.Bus, opts ...Option) *MediaManager {
	m := &MediaManager{
		storage:     store,
		tmdbFactory: tmdbFactory,
		prober:      prober,
		fileIO:      fileIO,
		bus:         bus,
		fsFactory:   func(root string) fs.FS { return os.DirFS(root) },
		browseRoots: defaultBrowseRoots,
		coordinator: newJobCoordinator(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Events returns the progress broadcast bus.
func (m *MediaManager) Events() *events.Bus {
	return m.bus
}
