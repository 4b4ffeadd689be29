package manager

import (
	"context"
	"errors"
	"strings"

	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
)

// FolderType tags a source folder with a classification override.
type FolderType string

const (
	FolderMovies FolderType = "MOVIES"
	FolderTV     FolderType = "TV"
	FolderMixed  FolderType = "MIXED"
)

// SourceFolder is a configured scan root. Its type overrides the parser's
// classification for every file found beneath it; MIXED defers to the parser.
type SourceFolder struct {
	Type FolderType `json:"type"`
	Path string     `json:"path"`
}

func (f SourceFolder) String() string {
	return string(f.Type) + ":" + f.Path
}

// ParseSourceFolder decodes the flat "TYPE:path" persistence form. An
// untagged string is treated as MIXED.
func ParseSourceFolder(s string) SourceFolder {
	typ, path, found := strings.Cut(s, ":")
	if found {
		switch FolderType(strings.ToUpper(typ)) {
		case FolderMovies:
			return SourceFolder{Type: FolderMovies, Path: path}
		case FolderTV:
			return SourceFolder{Type: FolderTV, Path: path}
		case FolderMixed:
			return SourceFolder{Type: FolderMixed, Path: path}
		}
	}

	return SourceFolder{Type: FolderMixed, Path: s}
}

// Settings is the decoded singleton configuration record.
type Settings struct {
	TMDBAPIKey    string         `json:"tmdbApiKey"`
	SourceFolders []SourceFolder `json:"sourceFolders"`
	MoviesRoot    string         `json:"moviesRoot"`
	TvRoot        string         `json:"tvRoot"`
	AutoOrganize  bool           `json:"autoOrganize"`
}

const sourceFolderSeparator = "\n"

func settingsFromModel(m model.Settings) Settings {
	s := Settings{
		TMDBAPIKey:   m.TmdbAPIKey,
		MoviesRoot:   m.MoviesRoot,
		TvRoot:       m.TvRoot,
		AutoOrganize: m.AutoOrganize,
	}

	for _, raw := range strings.Split(m.SourceFolders, sourceFolderSeparator) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		s.SourceFolders = append(s.SourceFolders, ParseSourceFolder(raw))
	}

	return s
}

func (s Settings) toModel() model.Settings {
	folders := make([]string, 0, len(s.SourceFolders))
	for _, f := range s.SourceFolders {
		folders = append(folders, f.String())
	}

	return model.Settings{
		TmdbAPIKey:    s.TMDBAPIKey,
		SourceFolders: strings.Join(folders, sourceFolderSeparator),
		MoviesRoot:    s.MoviesRoot,
		TvRoot:        s.TvRoot,
		AutoOrganize:  s.AutoOrganize,
	}
}

// Settings reads the singleton settings record. A missing row decodes to the
// zero settings value.
func (m *MediaManager) Settings(ctx context.Context) (Settings, error) {
	stored, err := m.storage.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Settings{}, nil
		}
		return Settings{}, err
	}

	return settingsFromModel(*stored), nil
}

// UpdateSettings writes the singleton settings record.
func (m *MediaManager) UpdateSettings(ctx context.Context, settings Settings) error {
	return m.storage.UpdateSettings(ctx, settings.toModel())
}
