package manager

import (
	"testing"

	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func i32Ptr(v int32) *int32   { return &v }

func episodeItem(name string, tmdbID *int32, season, episode int32, duration *int32, size int64) model.MediaItem {
	return model.MediaItem{
		DetectedType: "tv_show",
		CleanedName:  strPtr(name),
		TmdbID:       tmdbID,
		Season:       i32Ptr(season),
		Episode:      i32Ptr(episode),
		Duration:     duration,
		FileSize:     size,
	}
}

func TestDuplicateSameCatalogEpisode(t *testing.T) {
	a := episodeItem("Fallout", i32Ptr(106379), 2, 1, nil, 2_000_000_000)
	b := episodeItem("Fallout", i32Ptr(106379), 2, 1, nil, 2_050_000_000)

	assert.True(t, isDuplicatePair(b, a))
}

func TestDuplicateDifferentEpisodeNotFlagged(t *testing.T) {
	a := episodeItem("Fallout", i32Ptr(106379), 2, 1, nil, 2_000_000_000)
	b := episodeItem("Fallout", i32Ptr(106379), 2, 2, nil, 2_000_000_000)

	assert.False(t, isDuplicatePair(b, a))
}

func TestDuplicateDurationMismatchBlocksIdentityMatch(t *testing.T) {
	// identical identity but durations 30s apart and dissimilar names
	a := model.MediaItem{
		DetectedType: "movie",
		CleanedName:  strPtr("Inception"),
		TmdbID:       i32Ptr(27205),
		Duration:     i32Ptr(8880),
		FileSize:     2_000_000_000,
	}
	b := model.MediaItem{
		DetectedType: "movie",
		CleanedName:  strPtr("Inception Director Commentary Edition"),
		TmdbID:       i32Ptr(27205),
		Duration:     i32Ptr(8910),
		FileSize:     2_000_000_000,
	}

	assert.False(t, isDuplicatePair(b, a))
}

func TestDuplicateDurationWithinTolerance(t *testing.T) {
	a := episodeItem("Fallout", i32Ptr(106379), 2, 1, i32Ptr(3600), 2_000_000_000)
	b := episodeItem("Fallout", i32Ptr(106379), 2, 1, i32Ptr(3602), 5_000_000_000)

	assert.True(t, isDuplicatePair(b, a))
}

func TestDuplicateSizeConsultedOnlyWithoutDurations(t *testing.T) {
	// one duration missing: size within 5% qualifies
	a := episodeItem("The Wire Remastered", i32Ptr(1438), 1, 1, i32Ptr(3600), 2_000_000_000)
	b := episodeItem("Wire", i32Ptr(1438), 1, 1, nil, 2_050_000_000)
	assert.True(t, isDuplicatePair(b, a))

	// sizes too far apart
	c := episodeItem("Wire", i32Ptr(1438), 1, 1, nil, 3_000_000_000)
	assert.False(t, isDuplicatePair(c, a))
}

func TestDuplicateNameIdentity(t *testing.T) {
	a := model.MediaItem{
		DetectedType: "movie",
		CleanedName:  strPtr("The Matrix"),
		Year:         i32Ptr(1999),
		FileSize:     1_000_000_000,
	}
	b := model.MediaItem{
		DetectedType: "movie",
		CleanedName:  strPtr("Matrix"),
		Year:         i32Ptr(1999),
		FileSize:     1_020_000_000,
	}

	// normalized containment plus size similarity
	assert.True(t, isDuplicatePair(b, a))

	// different year breaks identity
	c := b
	c.Year = i32Ptr(2003)
	assert.False(t, isDuplicatePair(c, a))
}

func TestBestNameFallbackChain(t *testing.T) {
	item := model.MediaItem{TmdbName: strPtr("Catalog Name")}
	assert.Equal(t, "Catalog Name", bestName(item))

	item.DetectedName = strPtr("Detected Name")
	assert.Equal(t, "Detected Name", bestName(item))

	item.CleanedName = strPtr("Cleaned Name")
	assert.Equal(t, "Cleaned Name", bestName(item))
}
