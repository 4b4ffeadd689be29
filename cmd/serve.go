package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/mediasort/mediasort/config"
	"github.com/mediasort/mediasort/pkg/events"
	mio "github.com/mediasort/mediasort/pkg/io"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/manager"
	"github.com/mediasort/mediasort/pkg/probe"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/tmdb"
	"github.com/mediasort/mediasort/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the media server",
	Long:  `start the media server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		mgr, err := buildManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		srv := server.New(log, mgr)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildManager wires the store and pipeline dependencies from configuration,
// seeding the settings row on first boot.
func buildManager(cfg config.Config) (*manager.MediaManager, error) {
	ctx := context.Background()

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, err
	}

	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	if _, err := store.GetSettings(ctx); errors.Is(err, storage.ErrNotFound) {
		seed := model.Settings{
			TmdbAPIKey:    cfg.TMDB.APIKey,
			SourceFolders: strings.Join(cfg.Library.Sources, "\n"),
			MoviesRoot:    cfg.Library.MoviesRoot,
			TvRoot:        cfg.Library.TvRoot,
			AutoOrganize:  cfg.Library.AutoOrganize,
		}
		if err := store.UpdateSettings(ctx, seed); err != nil {
			return nil, err
		}
	}

	tmdbFactory := func(apiKey string) tmdb.ClientInterface {
		return tmdb.New(cfg.TMDB.BaseURL, apiKey)
	}

	return manager.New(
		store,
		tmdbFactory,
		probe.New(),
		&mio.MediaFileSystem{},
		events.NewBus(),
	), nil
}
