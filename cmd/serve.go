package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"excel-exporter/core/config"
	"excel-exporter/core/loader"
	"excel-exporter/core/logger"
	"excel-exporter/core/middleware/rayid"
	"excel-exporter/feature/export"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the exported tables for manual review",
	Long:  `Starts a read-only HTTP server over the exported JSON documents so the output can be reviewed before shipping.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load the exported documents before the listener starts; the
		// store is not safe for concurrent initialization.
		store := export.NewStore(cfg.Export.DataDir, logg)
		if err := store.Initialize(); err != nil {
			logg.Fatal("Failed to load exported documents", zap.Error(err))
		}
		if len(store.Tables()) == 0 {
			logg.Warn("No exported documents found; run export first",
				zap.String("dir", cfg.Export.DataDir))
		}

		// 4. Build the application
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		app.Use(rayid.New())

		manager := loader.NewManager(logg)
		manager.Register(export.NewFeature(store, logg))
		manager.LoadAll(app)

		// 5. Listen with graceful shutdown
		go func() {
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server stopped", zap.Error(err))
			}
		}()
		logg.Info("Preview server started", zap.String("port", cfg.Server.Port))

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logg.Info("Shutting down...")
		if err := app.Shutdown(); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
