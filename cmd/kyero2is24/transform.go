package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/services"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Convert the feed without touching the image store",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := newRuntime(cmd)
		cobra.CheckErr(err)
		defer log.Sync()

		pipeline := services.NewPipeline(cfg, log)
		rep, err := pipeline.Transform(cmd.Context())
		printSummary(rep, err)
		if err != nil {
			log.Error("transform aborted", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	transformCmd.Flags().Bool("split", false, "write one XML document per property")
}
