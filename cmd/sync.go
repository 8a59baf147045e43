package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"spool-sync/core/bambu"
	"spool-sync/core/reconcile"
	"spool-sync/feature/spoolsync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncPrinter           string
	syncFile              string
	syncDryRun            bool
	syncDisableWeightSync bool
	syncTimeout           time.Duration
)

// syncCmd runs a single reconciliation pass.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one reconciliation pass for a printer",
	Long: `Synchronizes the AMS trays of one printer with the Spoolman inventory.

Tray states are read from --file (a raw printer report, a {"trays": [...]}
document or a bare tray array; "-" reads stdin). Without --file the printer is
asked for a full report over MQTT.

Examples:
  # Live pass against the printer
  spool-sync sync --printer X1C

  # Preview the changes of a captured report
  spool-sync sync --printer X1C --file report.json --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncPrinter, "printer", "", "Registered printer name")
	syncCmd.Flags().StringVar(&syncFile, "file", "", "Read tray states from a file instead of the printer")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Log inventory changes without applying them")
	syncCmd.Flags().BoolVar(&syncDisableWeightSync, "disable-weight-sync", false, "Do not update the remaining weight of existing spools")
	syncCmd.Flags().DurationVar(&syncTimeout, "timeout", 30*time.Second, "How long to wait for a live printer report")
	_ = syncCmd.MarkFlagRequired("printer")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	if syncDisableWeightSync {
		rt.cfg.Sync.DisableWeightSync = true
	}
	svc := rt.syncService()

	var trays []reconcile.Tray
	if syncFile != "" {
		trays, err = readTrays(syncFile)
	} else {
		trays, err = fetchLiveTrays(ctx, svc, rt, syncPrinter)
	}
	if err != nil {
		return err
	}

	report, err := svc.SyncPrinter(ctx, syncPrinter, trays, spoolsync.PassOptions{Source: spoolsync.SourceCLI, DryRun: syncDryRun})
	if report != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	}
	return err
}

// readTrays decodes tray states from path, or stdin when path is "-".
func readTrays(path string) ([]reconcile.Tray, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decodeTrays(data)
}

// decodeTrays accepts a printer report, a sync request document or a tray array.
func decodeTrays(data []byte) ([]reconcile.Tray, error) {
	if trays, ok, err := bambu.ParseReport(data); err == nil && ok {
		return trays, nil
	}

	var req spoolsync.SyncRequest
	if err := json.Unmarshal(data, &req); err == nil && req.Trays != nil {
		return req.Trays, nil
	}

	var trays []reconcile.Tray
	if err := json.Unmarshal(data, &trays); err != nil {
		return nil, fmt.Errorf("unrecognized tray document: %w", err)
	}
	return trays, nil
}

// fetchLiveTrays asks the printer for a full report and returns its trays.
func fetchLiveTrays(ctx context.Context, svc *spoolsync.Service, rt *runtime, name string) ([]reconcile.Tray, error) {
	printer, err := svc.GetPrinter(ctx, name)
	if err != nil {
		return nil, err
	}
	if printer.Host == "" {
		return nil, errors.New("printer has no host configured, use --file")
	}

	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	client := bambu.NewClient(rt.cfg.MQTT, bambu.Target{
		Name:       printer.Name,
		Host:       printer.Host,
		Serial:     printer.Serial,
		AccessCode: printer.AccessCode,
	}, rt.log)
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	defer client.Close()

	result := make(chan []reconcile.Tray, 1)
	err = client.SubscribeReports(ctx, func(payload []byte) {
		trays, ok, err := bambu.ParseReport(payload)
		if err != nil || !ok {
			return
		}
		select {
		case result <- trays:
		default:
		}
	})
	if err != nil {
		return nil, err
	}
	if err := client.RequestPushAll(ctx); err != nil {
		return nil, err
	}

	select {
	case trays := <-result:
		rt.log.Info("Received printer report", zap.String("printer", printer.Name), zap.Int("trays", len(trays)))
		return trays, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("no AMS report from %s: %w", printer.Name, ctx.Err())
	}
}
