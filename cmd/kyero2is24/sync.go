package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/services"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the local image store against the feed",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := newRuntime(cmd)
		cobra.CheckErr(err)
		defer log.Sync()

		pipeline := services.NewPipeline(cfg, log)
		rep, err := pipeline.SyncImages(cmd.Context())
		printSummary(rep, err)
		if err != nil {
			log.Error("sync aborted", zap.Error(err))
			os.Exit(1)
		}
	},
}
