package library

import (
	"testing"

	"github.com/mediasort/mediasort/pkg/parse"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPlanMovie(t *testing.T) {
	tests := []struct {
		name string
		req  PlanRequest
		want string
	}{
		{
			name: "with year",
			req:  PlanRequest{Type: parse.TypeMovie, Name: "Inception", Year: intPtr(2010), Extension: "mkv"},
			want: "/movies/Inception (2010)/Inception (2010).mkv",
		},
		{
			name: "without year",
			req:  PlanRequest{Type: parse.TypeMovie, Name: "Primer", Extension: "mp4"},
			want: "/movies/Primer (Unknown)/Primer (Unknown).mp4",
		},
		{
			name: "unsafe characters scrubbed",
			req:  PlanRequest{Type: parse.TypeMovie, Name: "Face/Off: Redux", Year: intPtr(1997), Extension: "mkv"},
			want: "/movies/FaceOff Redux (1997)/FaceOff Redux (1997).mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Plan(tt.req, "/movies", "/tv")
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanEpisode(t *testing.T) {
	tests := []struct {
		name string
		req  PlanRequest
		want string
	}{
		{
			name: "single episode",
			req:  PlanRequest{Type: parse.TypeTVShow, Name: "Fallout", Season: intPtr(2), Episode: intPtr(1), Extension: "mkv"},
			want: "/tv/Fallout/Season 02/Fallout - S02E01.mkv",
		},
		{
			name: "multi episode",
			req:  PlanRequest{Type: parse.TypeTVShow, Name: "Friends", Season: intPtr(1), Episode: intPtr(1), EpisodeEnd: intPtr(2), Extension: "mkv"},
			want: "/tv/Friends/Season 01/Friends - S01E01-E02.mkv",
		},
		{
			name: "special",
			req:  PlanRequest{Type: parse.TypeTVShow, Name: "Naruto", Season: intPtr(0), Episode: intPtr(1), Extension: "mkv"},
			want: "/tv/Naruto/Season 00/Naruto - S00E01.mkv",
		},
		{
			name: "defaults season and episode to one",
			req:  PlanRequest{Type: parse.TypeTVShow, Name: "Lost", Extension: "mkv"},
			want: "/tv/Lost/Season 01/Lost - S01E01.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Plan(tt.req, "/movies", "/tv")
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanMissingRoots(t *testing.T) {
	_, ok := Plan(PlanRequest{Type: parse.TypeMovie, Name: "Inception", Extension: "mkv"}, "", "/tv")
	assert.False(t, ok)

	_, ok = Plan(PlanRequest{Type: parse.TypeTVShow, Name: "Fallout", Extension: "mkv"}, "/movies", "")
	assert.False(t, ok)

	_, ok = Plan(PlanRequest{Type: parse.TypeUnknown, Name: "whatever", Extension: "mkv"}, "/movies", "/tv")
	assert.False(t, ok)
}

func TestIsAlreadyOrganized(t *testing.T) {
	req := PlanRequest{Type: parse.TypeMovie, Name: "Inception", Year: intPtr(2010), Extension: "mkv"}

	t.Run("exact planned path", func(t *testing.T) {
		assert.True(t, IsAlreadyOrganized("/movies/Inception (2010)", "Inception (2010).mkv", req, "/movies", "/tv"))
	})

	t.Run("canonical folder under root", func(t *testing.T) {
		assert.True(t, IsAlreadyOrganized("/movies/Inception (2010)", "inception.original.mkv", req, "/movies", "/tv"))
		assert.True(t, IsAlreadyOrganized("/tv/Fallout/Season 02", "anything.mkv", req, "/movies", "/tv"))
	})

	t.Run("non-canonical folder under root", func(t *testing.T) {
		assert.False(t, IsAlreadyOrganized("/movies/staging", "Inception (2010).mkv", req, "/movies", "/tv"))
	})

	t.Run("outside roots", func(t *testing.T) {
		assert.False(t, IsAlreadyOrganized("/downloads", "Inception (2010).mkv", req, "/movies", "/tv"))
	})
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("movie.mkv"))
	assert.True(t, IsVideoFile("movie.MP4"))
	assert.True(t, IsVideoFile("show.m2ts"))
	assert.False(t, IsVideoFile("subtitle.srt"))
	assert.False(t, IsVideoFile("noext"))
}

func TestIsWithin(t *testing.T) {
	assert.True(t, IsWithin("/data/media", "/data/media/tv/show"))
	assert.True(t, IsWithin("/data/media", "/data/media"))
	assert.False(t, IsWithin("/data/media", "/data/media/../secrets"))
	assert.False(t, IsWithin("/data/media", "/etc"))
}
