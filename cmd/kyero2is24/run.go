package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/services"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Transform the feed and synchronize images",
	Long:  "Run the full pipeline: convert the Kyero feed to ImmoScout24 XML, then reconcile the local image store against the feed",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := newRuntime(cmd)
		cobra.CheckErr(err)
		defer log.Sync()

		pipeline := services.NewPipeline(cfg, log)
		rep, err := pipeline.Run(cmd.Context())
		printSummary(rep, err)
		if err != nil {
			log.Error("run aborted", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().Bool("split", false, "write one XML document per property")
}
