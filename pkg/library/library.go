// Package library computes the canonical destination layout for organized
// media and recognizes files already living in it.
package library

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mediasort/mediasort/pkg/parse"
)

var videoExtensions = []string{"mkv", "mp4", "avi", "mov", "wmv", "flv", "webm", "m4v", "ts", "m2ts"}

var (
	seasonDirRegex   = regexp.MustCompile(`^Season \d{2}$`)
	movieDirRegex    = regexp.MustCompile(`^.+ \((\d{4}|Unknown)\)$`)
	unsafeCharsRegex = regexp.MustCompile(`[<>:"/\\|?*]`)
	spaceRegex       = regexp.MustCompile(`\s+`)
)

// IsVideoFile reports whether the filename carries a supported media extension.
func IsVideoFile(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, e := range videoExtensions {
		if ext == e {
			return true
		}
	}

	return false
}

// Extension returns the lowercased extension without the leading dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// PlanRequest carries the item attributes the planner consumes.
type PlanRequest struct {
	Type       parse.MediaType
	Name       string
	Year       *int
	Season     *int
	Episode    *int
	EpisodeEnd *int
	Extension  string
}

// Plan maps an item onto its canonical destination path beneath the
// configured roots. It returns false when the matching root is unset or the
// type is neither movie nor tv show.
func Plan(req PlanRequest, moviesRoot, tvRoot string) (string, bool) {
	name := sanitizeName(req.Name)
	if name == "" {
		name = "Unknown"
	}

	switch req.Type {
	case parse.TypeMovie:
		if moviesRoot == "" {
			return "", false
		}
		base := fmt.Sprintf("%s (%s)", name, yearLabel(req.Year))
		return filepath.Join(moviesRoot, base, base+"."+req.Extension), true

	case parse.TypeTVShow:
		if tvRoot == "" {
			return "", false
		}
		season := 1
		if req.Season != nil {
			season = *req.Season
		}
		episode := 1
		if req.Episode != nil {
			episode = *req.Episode
		}

		file := fmt.Sprintf("%s - S%02dE%02d", name, season, episode)
		if req.EpisodeEnd != nil {
			file = fmt.Sprintf("%s-E%02d", file, *req.EpisodeEnd)
		}

		return filepath.Join(tvRoot, name, formatSeasonDirectory(season), file+"."+req.Extension), true
	}

	return "", false
}

// IsAlreadyOrganized reports whether a file already lives at its planned
// destination, or anywhere beneath a destination root inside a
// canonically-named folder. The containment check is deliberately
// conservative; see the planner tests.
func IsAlreadyOrganized(originalPath, originalFilename string, req PlanRequest, moviesRoot, tvRoot string) bool {
	full := filepath.Join(originalPath, originalFilename)

	if planned, ok := Plan(req, moviesRoot, tvRoot); ok && planned == full {
		return true
	}

	parent := filepath.Base(filepath.Clean(originalPath))
	if moviesRoot != "" && isWithin(moviesRoot, originalPath) && movieDirRegex.MatchString(parent) {
		return true
	}
	if tvRoot != "" && isWithin(tvRoot, originalPath) && (seasonDirRegex.MatchString(parent) || movieDirRegex.MatchString(parent)) {
		return true
	}

	return false
}

// formatSeasonDirectory formats season number as "Season XX"
func formatSeasonDirectory(seasonNumber int) string {
	return fmt.Sprintf("Season %02d", seasonNumber)
}

func yearLabel(year *int) string {
	if year == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%d", *year)
}

// sanitizeName scrubs characters that are unsafe in file names.
func sanitizeName(name string) string {
	name = unsafeCharsRegex.ReplaceAllString(name, "")
	name = spaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// isWithin reports whether path lies within the tree rooted at root after
// normalization.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

// IsWithin is the exported form used by the scan engine's traversal guard.
func IsWithin(root, path string) bool {
	return isWithin(root, path)
}
