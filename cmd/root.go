package cmd

import (
	"fmt"
	"os"

	"spool-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spool-sync",
	Short: "Bambu AMS to Spoolman synchronization service",
	Long: `spool-sync keeps a Spoolman inventory in line with the spools loaded in
Bambu Lab AMS units. Tagged first-party spools get a record on first sight,
and their location follows them between printers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config (ISO8601 timestamps) for CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
