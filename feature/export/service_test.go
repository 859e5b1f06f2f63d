package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"excel-exporter/feature/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func serviceConfig(t *testing.T) export.Config {
	t.Helper()
	base := t.TempDir()
	return export.Config{
		InputDir:  filepath.Join(base, "in"),
		DataDir:   filepath.Join(base, "data"),
		CodeDir:   filepath.Join(base, "code"),
		Namespace: "ExcelImporter",
	}
}

func TestService_Run(t *testing.T) {
	cfg := serviceConfig(t)
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0755))

	writeWorkbook(t, filepath.Join(cfg.InputDir, "Actor.xlsx"), map[string][][]string{
		"Actor": {
			{"Id", "Name", "MaxHealth"},
			{"1", "Veteran", "150"},
			{"2", "Rookie", "150.5"},
		},
	}, []string{"Actor"})
	writeWorkbook(t, filepath.Join(cfg.InputDir, "Lookup.xlsx"), map[string][][]string{
		"Lookup": {
			{"Code", "Name"},
			{"A", "Alpha"},
		},
	}, []string{"Lookup"})

	svc := export.NewService(cfg, zap.NewNop())
	summary, err := svc.Run()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 2, summary.Tables)
	assert.Equal(t, 3, summary.Rows)

	t.Run("DataDocuments", func(t *testing.T) {
		doc, err := os.ReadFile(filepath.Join(cfg.DataDir, "Actor.json"))
		require.NoError(t, err)
		assert.Contains(t, string(doc), `"items"`)
		// Promotion makes the first row's value a float.
		assert.Contains(t, string(doc), `"MaxHealth": 150.0`)
	})

	t.Run("GeneratedCode", func(t *testing.T) {
		for _, name := range []string{"ActorData.cs", "LookupData.cs", "ExcelDataManager.cs", "ExcelDataArray.cs"} {
			_, err := os.Stat(filepath.Join(cfg.CodeDir, name))
			assert.NoError(t, err, name)
		}
	})

	t.Run("RoundTripIsByteIdentical", func(t *testing.T) {
		first, err := os.ReadFile(filepath.Join(cfg.DataDir, "Actor.json"))
		require.NoError(t, err)

		_, err = export.NewService(cfg, zap.NewNop()).Run()
		require.NoError(t, err)

		second, err := os.ReadFile(filepath.Join(cfg.DataDir, "Actor.json"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestService_Run_SkipsAndContinues(t *testing.T) {
	cfg := serviceConfig(t)
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0755))

	// Corrupt workbook: not a zip archive at all.
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "Broken.xlsx"), []byte("not a workbook"), 0644))

	// Header-only workbook yields no tables.
	writeWorkbook(t, filepath.Join(cfg.InputDir, "Empty.xlsx"), map[string][][]string{
		"Data": {{"Id", "Name"}},
	}, []string{"Data"})

	writeWorkbook(t, filepath.Join(cfg.InputDir, "Good.xlsx"), map[string][][]string{
		"Data": {
			{"Id", "Name"},
			{"1", "Kept"},
		},
	}, []string{"Data"})

	svc := export.NewService(cfg, zap.NewNop())
	summary, err := svc.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 2, summary.SkippedFiles)
	assert.Equal(t, 1, summary.Tables)

	// The excluded workbooks leave no documents behind.
	files, err := filepath.Glob(filepath.Join(cfg.DataDir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestService_Run_EmptyInputDir(t *testing.T) {
	cfg := serviceConfig(t)
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0755))

	summary, err := export.NewService(cfg, zap.NewNop()).Run()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Tables)
}

func TestService_Run_WarnsOnMissingIdentifierColumn(t *testing.T) {
	cfg := serviceConfig(t)
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0755))

	writeWorkbook(t, filepath.Join(cfg.InputDir, "Lookup.xlsx"), map[string][][]string{
		"Lookup": {
			{"Code", "Name"},
			{"A", "Alpha"},
		},
	}, []string{"Lookup"})
	writeWorkbook(t, filepath.Join(cfg.InputDir, "Monster.xlsx"), map[string][][]string{
		"Monster": {
			{"Id", "Name"},
			{"1", "Slime"},
		},
	}, []string{"Monster"})

	core, logs := observer.New(zapcore.WarnLevel)
	_, err := export.NewService(cfg, zap.New(core)).Run()
	require.NoError(t, err)

	warned := logs.FilterMessage("Table has no identifier column").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "Lookup", warned[0].ContextMap()["table"])
}

func TestService_Run_CountsDefaultedCells(t *testing.T) {
	cfg := serviceConfig(t)
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0755))

	writeWorkbook(t, filepath.Join(cfg.InputDir, "Sparse.xlsx"), map[string][][]string{
		"Data": {
			{"Id", "Gold", "Note"},
			{"1", "10", "full"},
			{"2", "", "partial"},
		},
	}, []string{"Data"})

	summary, err := export.NewService(cfg, zap.NewNop()).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DefaultedCells)

	doc, err := os.ReadFile(filepath.Join(cfg.DataDir, "Sparse.json"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"Gold": 0`)
}
