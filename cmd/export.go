package cmd

import (
	"fmt"
	"time"

	"excel-exporter/core/config"
	"excel-exporter/core/logger"
	"excel-exporter/feature/export"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export spreadsheet tables to JSON and generated C# code",
	Long: `Reads every .xlsx workbook in the input directory, infers column types,
writes one {"items":[...]} JSON document per table and generates the matching
C# data classes, array wrappers and ExcelDataManager accessor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logg = logg.With(zap.String("run_id", uuid.NewString()))

		svc := export.NewService(cfg.Export, logg)
		summary, err := svc.Run()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		executionTime := time.Since(startTime)

		fmt.Println("\n=== Export Summary ===")
		fmt.Printf("Workbooks: %d\n", summary.Files)
		fmt.Printf("Skipped Workbooks: %d\n", summary.SkippedFiles)
		fmt.Printf("Tables: %d\n", summary.Tables)
		fmt.Printf("Rows: %d\n", summary.Rows)
		fmt.Printf("Defaulted Cells: %d\n", summary.DefaultedCells)
		fmt.Printf("Execution Time: %s\n", executionTime.String())
		fmt.Printf("\nData: %s\nCode: %s\n", cfg.Export.DataDir, cfg.Export.CodeDir)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
