package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"spool-sync/core/loader"
	"spool-sync/core/logger"
	"spool-sync/core/middleware/auth"
	"spool-sync/core/middleware/rayid"
	"spool-sync/feature/health"
	"spool-sync/feature/spoolsync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "spool-sync/docs/swagger"
)

var noWatch bool

// @title Spool Sync API
// @version 1.0
// @description API for synchronizing Bambu Lab AMS trays with a Spoolman inventory.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync server",
	Long:  `Starts the HTTP server, initializes all enabled features and watches every enabled printer over MQTT.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.Close()
		logg := rt.log

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		syncSvc := rt.syncService()

		mgr := loader.NewManager()
		mgr.Register(health.NewFeature(rt.healthService()))
		mgr.Register(spoolsync.NewFeature(syncSvc))

		// RayID first so every log line of a request is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		for _, f := range mgr.Features() {
			logg.Info("Feature registered", zap.String("name", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		watcherDone := make(chan struct{})
		if noWatch {
			close(watcherDone)
		} else {
			watcher := spoolsync.NewWatcher(syncSvc, rt.cfg.MQTT, rt.cfg.Sync, logg)
			go func() {
				defer close(watcherDone)
				if err := watcher.Run(ctx); err != nil {
					logg.Error("Printer watcher stopped", zap.Error(err))
				}
			}()
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		<-watcherDone
	},
}

func init() {
	startCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Serve the API without connecting to printers")
	RootCmd.AddCommand(startCmd)
}
