package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Summary is the outcome of one export run. The pipeline degrades and
// continues, so failures show up here and in the logs rather than as a
// non-zero exit.
type Summary struct {
	Files          int
	SkippedFiles   int
	Tables         int
	Rows           int
	DefaultedCells int
}

// Service runs the export pipeline.
type Service struct {
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(cfg Config, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Run scans the input directory, exports every workbook and writes the
// generated code. Unreadable workbooks are skipped; only setup problems
// (unreachable directories) are returned as errors.
func (s *Service) Run() (*Summary, error) {
	if err := os.MkdirAll(s.cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.MkdirAll(s.cfg.CodeDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create code dir: %w", err)
	}

	pattern := filepath.Join(s.cfg.InputDir, "*.xlsx")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input dir: %w", err)
	}

	summary := &Summary{}
	if len(files) == 0 {
		s.logger.Warn("No .xlsx files found", zap.String("dir", s.cfg.InputDir))
		return summary, nil
	}
	s.logger.Info("Export started",
		zap.Int("files", len(files)),
		zap.String("input", s.cfg.InputDir),
	)

	// filepath.Glob returns sorted paths, so table order (and therefore the
	// generated manager) is deterministic across runs.
	var all []*Table
	for _, file := range files {
		tables, err := ParseWorkbook(file)
		if err != nil {
			s.logger.Error("Skipping unreadable workbook", zap.String("file", file), zap.Error(err))
			summary.SkippedFiles++
			continue
		}
		if len(tables) == 0 {
			s.logger.Warn("Workbook has no populated sheet", zap.String("file", file))
			summary.SkippedFiles++
			continue
		}
		summary.Files++

		for _, t := range tables {
			if err := s.exportTable(t); err != nil {
				s.logger.Error("Failed to export table", zap.String("table", t.Key), zap.Error(err))
				continue
			}
			summary.Tables++
			summary.Rows += len(t.Rows)
			if n := t.DefaultedCells(); n > 0 {
				summary.DefaultedCells += n
				s.logger.Warn("Cells defaulted during export",
					zap.String("table", t.Key),
					zap.Int("cells", n),
				)
			}
			all = append(all, t)
		}
	}

	if len(all) > 0 {
		if err := s.writeGenerated(all); err != nil {
			s.logger.Error("Failed to write generated code", zap.Error(err))
		}
	}

	s.logger.Info("Export finished",
		zap.Int("files", summary.Files),
		zap.Int("skipped_files", summary.SkippedFiles),
		zap.Int("tables", summary.Tables),
		zap.Int("rows", summary.Rows),
		zap.Int("defaulted_cells", summary.DefaultedCells),
	)
	return summary, nil
}

// exportTable writes the table's JSON document and its C# data class.
func (s *Service) exportTable(t *Table) error {
	doc, err := EncodeDocument(t)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	dataPath := filepath.Join(s.cfg.DataDir, t.Key+".json")
	if err := os.WriteFile(dataPath, doc, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	class, err := GenerateRecordClass(t, s.cfg.Namespace)
	if err != nil {
		return err
	}
	classPath := filepath.Join(s.cfg.CodeDir, ToPascalCase(t.Key)+"Data.cs")
	if err := os.WriteFile(classPath, []byte(class), 0644); err != nil {
		return fmt.Errorf("write class: %w", err)
	}

	// The generated GetById accessor resolves rows through this column, so
	// flag tables where the lookup will never match.
	if DetectIDColumn(t.Columns) < 0 {
		s.logger.Warn("Table has no identifier column", zap.String("table", t.Key))
	}

	s.logger.Info("Exported table",
		zap.String("table", t.Key),
		zap.Int("rows", len(t.Rows)),
		zap.String("data", dataPath),
	)
	return nil
}

// writeGenerated emits the manager and wrapper files covering all tables.
func (s *Service) writeGenerated(tables []*Table) error {
	manager, err := GenerateManager(tables, s.cfg.Namespace, filepath.Base(s.cfg.DataDir))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.cfg.CodeDir, "ExcelDataManager.cs"), []byte(manager), 0644); err != nil {
		return fmt.Errorf("write manager: %w", err)
	}

	wrappers, err := GenerateArrayWrappers(tables, s.cfg.Namespace)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.cfg.CodeDir, "ExcelDataArray.cs"), []byte(wrappers), 0644); err != nil {
		return fmt.Errorf("write wrappers: %w", err)
	}

	s.logger.Info("Generated accessor code",
		zap.Int("tables", len(tables)),
		zap.String("dir", s.cfg.CodeDir),
	)
	return nil
}
