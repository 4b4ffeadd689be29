package parse

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpisodes(t *testing.T) {
	tests := []struct {
		filename   string
		name       string
		season     int
		episode    int
		episodeEnd int
	}{
		{"Breaking.Bad.S01E01.720p.BluRay.x264-DEMAND.mkv", "Breaking Bad", 1, 1, 0},
		{"Fallout.S02E01.1080p.WEB-DL.Hindi.5.1-English.5.1.ESub.x264-HDHub4u.Ms.mkv", "Fallout", 2, 1, 0},
		{"Game of Thrones - 1x01 - Winter Is Coming.mp4", "Game of Thrones", 1, 1, 0},
		{"Friends.S01E01E02.720p.mkv", "Friends", 1, 1, 2},
		{"Stranger.Things.S04E01-03.2160p.mkv", "Stranger Things", 4, 1, 3},
		{"The.Office.S03 E12.mkv", "The Office", 3, 12, 0},
		{"Archer S05 EP 04.mkv", "Archer", 5, 4, 0},
		{"doctor who season 2 episode 7.mkv", "Doctor Who", 2, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := Parse(tt.filename, "")
			assert.Equal(t, TypeTVShow, got.DetectedType)
			assert.Equal(t, tt.name, got.CleanedName)
			require.NotNil(t, got.Season)
			assert.Equal(t, tt.season, *got.Season)
			require.NotNil(t, got.Episode)
			assert.Equal(t, tt.episode, *got.Episode)
			if tt.episodeEnd != 0 {
				require.NotNil(t, got.EpisodeEnd)
				assert.Equal(t, tt.episodeEnd, *got.EpisodeEnd)
			} else {
				assert.Nil(t, got.EpisodeEnd)
			}
			assert.Nil(t, got.Year)
			assert.False(t, got.IsSeasonPack)
		})
	}
}

func TestParseMovies(t *testing.T) {
	tests := []struct {
		filename string
		name     string
		year     int
	}{
		{"The.Matrix.(1999).1080p.BluRay.mkv", "The Matrix", 1999},
		{"Inception.2010.2160p.UHD.BluRay.mkv", "Inception", 2010},
		{"Blade Runner [1982] Remastered.mp4", "Blade Runner", 1982},
		{"Lord.of.the.Rings.2001.EXTENDED.1080p.mkv", "Lord of the Rings", 2001},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := Parse(tt.filename, "")
			assert.Equal(t, TypeMovie, got.DetectedType)
			assert.Equal(t, tt.name, got.CleanedName)
			require.NotNil(t, got.Year)
			assert.Equal(t, tt.year, *got.Year)
			assert.Nil(t, got.Season)
			assert.Nil(t, got.Episode)
		})
	}
}

func TestParseSeasonPacks(t *testing.T) {
	t.Run("complete season", func(t *testing.T) {
		got := Parse("Complete Season 01 - House MD.mkv", "")
		assert.Equal(t, TypeTVShow, got.DetectedType)
		assert.True(t, got.IsSeasonPack)
		assert.Equal(t, "House MD", got.CleanedName)
		require.NotNil(t, got.Season)
		assert.Equal(t, 1, *got.Season)
		assert.Nil(t, got.Episode)
	})

	t.Run("bare season marker", func(t *testing.T) {
		got := Parse("Breaking.Bad.S02.1080p.mkv", "")
		assert.True(t, got.IsSeasonPack)
		assert.Equal(t, "Breaking Bad", got.CleanedName)
		require.NotNil(t, got.Season)
		assert.Equal(t, 2, *got.Season)
	})

	t.Run("season word", func(t *testing.T) {
		got := Parse("Firefly Season One.mkv", "")
		assert.True(t, got.IsSeasonPack)
		require.NotNil(t, got.Season)
		assert.Equal(t, 1, *got.Season)
	})
}

func TestParseSpecials(t *testing.T) {
	t.Run("special marker", func(t *testing.T) {
		got := Parse("Naruto - Special - OVA.mkv", "")
		assert.Equal(t, TypeTVShow, got.DetectedType)
		require.NotNil(t, got.Season)
		assert.Equal(t, 0, *got.Season)
		assert.Equal(t, "Naruto", got.CleanedName)
	})

	t.Run("s00 marker", func(t *testing.T) {
		got := Parse("Doctor.Who.S00E05.mkv", "")
		require.NotNil(t, got.Season)
		assert.Equal(t, 0, *got.Season)
		require.NotNil(t, got.Episode)
		assert.Equal(t, 5, *got.Episode)
	})

	t.Run("trailing episode number", func(t *testing.T) {
		got := Parse("Bleach OVA 2.mkv", "")
		require.NotNil(t, got.Season)
		assert.Equal(t, 0, *got.Season)
		require.NotNil(t, got.Episode)
		assert.Equal(t, 2, *got.Episode)
	})
}

func TestParseUnknown(t *testing.T) {
	got := Parse("random_video_file.mkv", "")
	assert.Equal(t, TypeUnknown, got.DetectedType)
	assert.Nil(t, got.Year)
	assert.Nil(t, got.Season)
	assert.Nil(t, got.Episode)
	assert.Equal(t, 0, got.Confidence)
}

func TestParseParentFolderFallback(t *testing.T) {
	t.Run("uses parent folder when informative", func(t *testing.T) {
		got := Parse("episode_final_cut.mkv", "The Wire")
		assert.Equal(t, "The Wire", got.CleanedName)
	})

	t.Run("generic folder falls back to basename", func(t *testing.T) {
		got := Parse("some_home_video.mkv", "Downloads")
		assert.Equal(t, "Some Home Video", got.CleanedName)
	})
}

func TestParsePrecedence(t *testing.T) {
	// an episode pattern always beats a year tag
	got := Parse("The.Expanse.S01E01.2015.1080p.mkv", "")
	assert.Equal(t, TypeTVShow, got.DetectedType)
	assert.Nil(t, got.Year)
	require.NotNil(t, got.Episode)
	assert.Equal(t, 1, *got.Episode)
}

func TestParseConfidenceBounds(t *testing.T) {
	inputs := []string{
		"Breaking.Bad.S01E01.720p.mkv",
		"Inception.2010.mkv",
		"random_video_file.mkv",
		"",
		"....",
		"S01E01.mkv",
		"Complete Season.mkv",
	}

	for _, in := range inputs {
		got := Parse(in, "")
		assert.GreaterOrEqual(t, got.Confidence, 0, "input %q", in)
		assert.LessOrEqual(t, got.Confidence, 100, "input %q", in)
	}
}

func TestParseSnapshots(t *testing.T) {
	filenames := []string{
		"Breaking.Bad.S01E01.720p.BluRay.x264-DEMAND.mkv",
		"Fallout.S02E01.1080p.WEB-DL.Hindi.5.1-English.5.1.ESub.x264-HDHub4u.Ms.mkv",
		"Game of Thrones - 1x01 - Winter Is Coming.mp4",
		"Friends.S01E01E02.720p.mkv",
		"Stranger.Things.S04E01-03.2160p.mkv",
		"The.Matrix.(1999).1080p.BluRay.mkv",
		"Inception.2010.2160p.UHD.BluRay.mkv",
		"Complete Season 01 - House MD.mkv",
		"Naruto - Special - OVA.mkv",
		"random_video_file.mkv",
	}

	for _, f := range filenames {
		got := Parse(f, "")
		snaps.MatchSnapshot(t, fmt.Sprintf("%s => %+v", f, got))
	}
}
