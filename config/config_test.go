package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := viper.New()
	v.Set("tmdb.baseUrl", "https://api.themoviedb.org")
	v.Set("tmdb.apiKey", "key")
	v.Set("library.moviesRoot", "/library/movies")
	v.Set("library.tvRoot", "/library/tv")
	v.Set("library.sources", []string{"MOVIES:/data/movies", "/data/downloads"})
	v.Set("storage.filePath", "mediasort.sqlite")
	v.Set("server.port", 8080)

	cfg, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.TMDB.APIKey)
	assert.Equal(t, "/library/movies", cfg.Library.MoviesRoot)
	assert.Len(t, cfg.Library.Sources, 2)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestNewRejectsInvalidPort(t *testing.T) {
	v := viper.New()
	v.Set("storage.filePath", "mediasort.sqlite")
	v.Set("server.port", 0)

	_, err := New(v)
	assert.Error(t, err)
}
