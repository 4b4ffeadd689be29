package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mediasort/mediasort/config"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	itemsStatus         string
	itemsType           string
	itemsDuplicatesOnly bool
)

// itemsCmd lists stored media items
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "list stored media items",
	Long:  `list stored media items, newest first`,
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

		filter := storage.MediaItemFilter{DuplicatesOnly: itemsDuplicatesOnly}
		if itemsStatus != "" {
			status := storage.ItemStatus(itemsStatus)
			filter.Status = &status
		}
		if itemsType != "" {
			filter.DetectedType = &itemsType
		}

		items, err := mgr.ListMediaItems(cmd.Context(), filter)
		if err != nil {
			log.Fatal("failed to list items", zap.Error(err))
		}

		for _, item := range items {
			name := item.OriginalFilename
			if item.CleanedName != nil {
				name = *item.CleanedName
			}
			fmt.Printf("%6d  %-10s %-8s %-40s %s\n",
				item.ID, item.Status, item.DetectedType, name, humanize.Bytes(uint64(item.FileSize)))
		}
	},
}

func init() {
	itemsCmd.Flags().StringVar(&itemsStatus, "status", "", "filter by status")
	itemsCmd.Flags().StringVar(&itemsType, "type", "", "filter by detected type")
	itemsCmd.Flags().BoolVar(&itemsDuplicatesOnly, "duplicates", false, "only list duplicates")
	rootCmd.AddCommand(itemsCmd)
}
