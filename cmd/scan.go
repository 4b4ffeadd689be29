package cmd

import (
	"fmt"
	"os"

	"github.com/mediasort/mediasort/config"
	"github.com/mediasort/mediasort/pkg/events"
	"github.com/mediasort/mediasort/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// scanCmd runs a one-shot scan against the configured source folders
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "scan the configured source folders",
	Long:  `scan the configured source folders and reconcile discovered media files into the store`,
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
		sub := mgr.Events().Subscribe()

		jobID, err := mgr.StartScan(ctx)
		if err != nil {
			log.Fatal("failed to start scan", zap.Error(err))
		}

		for evt := range sub.Events() {
			switch data := evt.Data.(type) {
			case events.ScanProgress:
				fmt.Printf("\r%d/%d files (%d new, %d errors)", data.ProcessedFiles, data.TotalFiles, data.NewItems, data.ErrorsCount)
			case events.ScanDone:
				fmt.Printf("\nscan %d finished: %s\n", jobID, data.Status)
				if data.Status != "completed" {
					os.Exit(1)
				}
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
