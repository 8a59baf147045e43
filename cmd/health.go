package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var healthFix bool

// healthCmd checks every dependency.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check storage, Spoolman and database health",
	Long:  `Runs every dependency check and prints the combined report. Exits non-zero when a check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		svc := rt.healthService()
		ctx := cmd.Context()

		if healthFix && rt.store != nil {
			if report := svc.CheckStorage(ctx); !report.Exists {
				rt.log.Info("Creating missing archive bucket", zap.String("bucket", rt.cfg.Storage.Bucket))
				if err := svc.FixStorage(ctx); err != nil {
					return err
				}
			}
		}

		report := svc.CheckAll(ctx)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}

		if !report.Healthy() {
			return errors.New("health check failed")
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&healthFix, "fix", false, "Create the archive bucket if it is missing")
	RootCmd.AddCommand(healthCmd)
}
