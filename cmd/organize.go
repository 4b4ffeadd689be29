package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mediasort/mediasort/config"
	"github.com/mediasort/mediasort/pkg/events"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// organizeCmd moves pending items into the canonical library layout
var organizeCmd = &cobra.Command{
	Use:   "organize [id...]",
	Short: "organize pending items into the library",
	Long:  `organize the given item ids, or every pending non-duplicate item when none are supplied`,
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

		ctx := cmd.Context()

		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				log.Fatalw("invalid item id", "arg", arg)
			}
			ids = append(ids, id)
		}

		if len(ids) == 0 {
			pending := storage.ItemStatusPending
			items, err := mgr.ListMediaItems(ctx, storage.MediaItemFilter{Status: &pending})
			if err != nil {
				log.Fatal("failed to list pending items", zap.Error(err))
			}
			for _, item := range items {
				if item.DuplicateOf != nil || item.IsSeasonPack {
					continue
				}
				ids = append(ids, int64(item.ID))
			}
		}

		if len(ids) == 0 {
			fmt.Println("nothing to organize")
			return
		}

		sub := mgr.Events().Subscribe()

		jobID, err := mgr.StartOrganize(ctx, ids)
		if err != nil {
			log.Fatal("failed to start organize", zap.Error(err))
		}

		for evt := range sub.Events() {
			switch data := evt.Data.(type) {
			case events.OrganizeProgress:
				fmt.Printf("\r%d/%d items (%d ok, %d failed) %s", data.ProcessedFiles, data.TotalFiles, data.SuccessCount, data.FailedCount, data.CurrentFile)
			case events.OrganizeDone:
				fmt.Printf("\norganize %d finished: %s\n", jobID, data.Status)
				if data.Status != "completed" {
					os.Exit(1)
				}
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(organizeCmd)
}
