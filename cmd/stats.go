package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mediasort/mediasort/config"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// statsCmd prints aggregate library statistics
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show library statistics",
	Long:  `show aggregate statistics over the stored media items`,
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

		stats, err := mgr.GetStats(cmd.Context())
		if err != nil {
			log.Fatal("failed to get stats", zap.Error(err))
		}

		fmt.Printf("total:      %d (%s)\n", stats.Total, humanize.Bytes(uint64(stats.TotalBytes)))
		fmt.Printf("organized:  %d\n", stats.Organized)
		fmt.Printf("pending:    %d\n", stats.Pending)
		fmt.Printf("errors:     %d\n", stats.Errors)
		fmt.Printf("duplicates: %d\n", stats.Duplicates)
		fmt.Printf("movies:     %d\n", stats.Movies)
		fmt.Printf("tv shows:   %d\n", stats.TVShows)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
