package cmd

import (
	"fmt"

	"excel-exporter/core/config"
	"excel-exporter/core/logger"
	"excel-exporter/feature/samples"

	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the sample input workbooks",
	Long:  `Writes the sample game configuration tables as .xlsx files into the input directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		written, err := samples.Write(cfg.Export.InputDir, logg)
		if err != nil {
			return fmt.Errorf("sample generation failed: %w", err)
		}

		fmt.Printf("\nGenerated %d workbooks in %s\n", written, cfg.Export.InputDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)
}
