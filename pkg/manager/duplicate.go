package manager

import (
	"context"
	"regexp"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/parse"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

const (
	nameSimilarityThreshold = 0.90
	durationToleranceSecs   = 2
	sizeTolerance           = 0.05
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]`)

// findDuplicate returns the id of an existing primary the candidate
// duplicates, or nil. Candidates are compared against primaries of the same
// detected type in the store's insertion order; the first match wins.
func (m *MediaManager) findDuplicate(ctx context.Context, candidate model.MediaItem) *int32 {
	log := logger.FromCtx(ctx)

	if candidate.DetectedType == string(parse.TypeUnknown) {
		return nil
	}

	primaries, err := m.storage.ListPrimaryItems(ctx, candidate.DetectedType)
	if err != nil {
		log.Warn("failed to list primaries for duplicate detection", zap.Error(err))
		return nil
	}

	for _, existing := range primaries {
		if existing.OriginalPath == candidate.OriginalPath && existing.OriginalFilename == candidate.OriginalFilename {
			continue
		}

		if isDuplicatePair(candidate, existing.MediaItem) {
			id := existing.ID
			return &id
		}
	}

	return nil
}

// isDuplicatePair applies the identity-and-similarity rule to a candidate
// and an existing primary of the same detected type.
func isDuplicatePair(candidate, existing model.MediaItem) bool {
	return identityMatches(candidate, existing) && similarityMatches(candidate, existing)
}

func identityMatches(candidate, existing model.MediaItem) bool {
	isTV := candidate.DetectedType == string(parse.TypeTVShow)

	if candidate.TmdbID != nil && existing.TmdbID != nil && *candidate.TmdbID == *existing.TmdbID {
		if !isTV || (int32PtrEqual(candidate.Season, existing.Season) && int32PtrEqual(candidate.Episode, existing.Episode)) {
			return true
		}
	}

	if namesMatch(bestName(candidate), bestName(existing)) {
		if isTV {
			return int32PtrEqual(candidate.Season, existing.Season) && int32PtrEqual(candidate.Episode, existing.Episode)
		}
		return int32PtrEqual(candidate.Year, existing.Year)
	}

	return false
}

func similarityMatches(candidate, existing model.MediaItem) bool {
	if nameSimilarity(bestName(candidate), bestName(existing)) > nameSimilarityThreshold {
		return true
	}

	if candidate.Duration != nil && existing.Duration != nil {
		diff := int(*candidate.Duration) - int(*existing.Duration)
		if diff < 0 {
			diff = -diff
		}
		return diff <= durationToleranceSecs
	}

	// durations not comparable, fall back to file size
	larger := candidate.FileSize
	if existing.FileSize > larger {
		larger = existing.FileSize
	}
	if larger == 0 {
		return false
	}

	diff := candidate.FileSize - existing.FileSize
	if diff < 0 {
		diff = -diff
	}

	return float64(diff) <= sizeTolerance*float64(larger)
}

// bestName picks the most usable rendering of an item's title.
func bestName(item model.MediaItem) string {
	for _, name := range []*string{item.CleanedName, item.DetectedName, item.TmdbName} {
		if name != nil && *name != "" {
			return *name
		}
	}
	return ""
}

// namesMatch compares normalized names; containment also counts once both
// names are long enough to make it meaningful.
func namesMatch(a, b string) bool {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if len(na) > 3 && len(nb) > 3 {
		return strings.Contains(na, nb) || strings.Contains(nb, na)
	}
	return false
}

func nameSimilarity(a, b string) float64 {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return 0
	}

	similarity, err := edlib.StringsSimilarity(na, nb, edlib.Levenshtein)
	if err != nil {
		return 0
	}

	return float64(similarity)
}

func normalizeName(name string) string {
	return nonAlnumRegex.ReplaceAllString(strings.ToLower(name), "")
}

func int32PtrEqual(a, b *int32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
