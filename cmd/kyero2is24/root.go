package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/config"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kyero2is24",
	Short: "Kyero V3 to ImmoScout24 feed converter",
	Long:  "Convert Kyero V3 property feeds to ImmoScout24 XML and keep the local image store in sync with the feed's photos",
}

func init() {
	rootCmd.PersistentFlags().String("input", "", "source feed path or URL")
	rootCmd.PersistentFlags().String("output", "", "destination feed path")
	rootCmd.PersistentFlags().String("images", "", "image store base directory")
	rootCmd.PersistentFlags().String("log-file", "", "log file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(syncCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRuntime builds the run configuration (env defaults, flag overrides) and
// the process-wide logger.
func newRuntime(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg := config.Load()

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.SourceFeed = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputFeed = v
	}
	if v, _ := cmd.Flags().GetString("images"); v != "" {
		cfg.ImagesDir = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if f := cmd.Flags().Lookup("split"); f != nil {
		cfg.Split, _ = cmd.Flags().GetBool("split")
	}

	log, err := logger.New(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
