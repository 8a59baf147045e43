package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"spool-sync/feature/spoolsync"

	"github.com/spf13/cobra"
)

var printerReq spoolsync.PrinterRequest

// printerCmd is the parent command for printer management.
var printerCmd = &cobra.Command{
	Use:   "printer",
	Short: "Manage registered printers",
}

var printerAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a printer",
	Long: `Registers a printer. Host, serial and access code are needed for live
MQTT sync; without them the printer can only be synced from files or the API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSyncService(cmd.Context(), func(svc *spoolsync.Service) error {
			req := printerReq
			req.Name = args[0]
			p, err := svc.AddPrinter(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered printer %s (id %d)\n", p.Name, p.ID)
			return nil
		})
	},
}

var printerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered printers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSyncService(cmd.Context(), func(svc *spoolsync.Service) error {
			printers, err := svc.ListPrinters(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHOST\tSERIAL\tENABLED\tWEIGHT SYNC")
			for _, p := range printers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\n", p.Name, p.Host, p.Serial, p.Enabled, !p.DisableWeightSync)
			}
			return w.Flush()
		})
	},
}

var printerRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Unregister a printer (run history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSyncService(cmd.Context(), func(svc *spoolsync.Service) error {
			if err := svc.RemovePrinter(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed printer %s\n", args[0])
			return nil
		})
	},
}

func init() {
	f := printerAddCmd.Flags()
	f.StringVar(&printerReq.Host, "host", "", "Printer LAN address")
	f.StringVar(&printerReq.Serial, "serial", "", "Printer serial number")
	f.StringVar(&printerReq.AccessCode, "access-code", os.Getenv("PRINTER_ACCESS_CODE"), "LAN access code (defaults to $PRINTER_ACCESS_CODE)")
	f.BoolVar(&printerReq.DisableWeightSync, "disable-weight-sync", false, "Do not update the remaining weight of existing spools")
	f.BoolVar(&printerReq.Disabled, "disabled", false, "Register without watching the printer")

	printerCmd.AddCommand(printerAddCmd, printerListCmd, printerRemoveCmd)
	RootCmd.AddCommand(printerCmd)
}

func withSyncService(ctx context.Context, fn func(*spoolsync.Service) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(rt.syncService())
}
