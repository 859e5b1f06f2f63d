package cmd

import (
	"fmt"
	"time"

	"excel-exporter/core/config"
	"excel-exporter/core/logger"
	"excel-exporter/core/storage"
	"excel-exporter/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the exported documents to object storage",
	Long:  `Uploads every exported JSON document to the configured bucket under gamedata/, creating the bucket if needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		logg.Info("Publishing exported documents...",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("dir", cfg.Export.DataDir),
		)

		pub := export.NewPublisher(client, cfg.Storage.Bucket, logg)
		uploaded, err := pub.Publish(ctx, cfg.Export.DataDir)
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		missing, err := pub.Verify(ctx, cfg.Export.DataDir)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		fmt.Println("\n=== Publish Summary ===")
		fmt.Printf("Uploaded: %d\n", uploaded)
		fmt.Printf("Missing After Upload: %d\n", len(missing))
		for _, name := range missing {
			fmt.Printf("  - %s\n", name)
		}
		fmt.Printf("Bucket: %s\n", cfg.Storage.Bucket)
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
