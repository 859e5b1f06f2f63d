package samples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Write regenerates the sample workbooks in dir, one .xlsx per definition.
// Workbooks that fail to write are logged and skipped; the returned count is
// the number written.
func Write(dir string, logger *zap.Logger) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create input dir: %w", err)
	}

	written := 0
	for _, def := range Definitions() {
		path := filepath.Join(dir, def.Name+".xlsx")
		if err := writeWorkbook(def, path); err != nil {
			logger.Error("Failed to write sample workbook", zap.String("file", path), zap.Error(err))
			continue
		}
		written++
		logger.Info("Wrote sample workbook",
			zap.String("file", path),
			zap.Int("rows", len(def.Rows)),
		)
	}
	return written, nil
}

func writeWorkbook(def Definition, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", def.Sheet); err != nil {
		return err
	}

	for col, header := range def.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(def.Sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range def.Rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(def.Sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := styleHeader(f, def); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// styleHeader applies the bold white-on-blue header row the hand-maintained
// tables use, so regenerated samples look familiar in a spreadsheet editor.
func styleHeader(f *excelize.File, def Definition) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(def.Headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(def.Sheet, "A1", last, style)
}
