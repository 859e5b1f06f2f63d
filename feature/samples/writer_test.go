package samples_test

import (
	"path/filepath"
	"testing"

	"excel-exporter/feature/samples"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestDefinitions(t *testing.T) {
	defs := samples.Definitions()
	require.NotEmpty(t, defs)

	for _, def := range defs {
		t.Run(def.Name, func(t *testing.T) {
			assert.NotEmpty(t, def.Headers)
			assert.NotEmpty(t, def.Rows)
			for i, row := range def.Rows {
				assert.Len(t, row, len(def.Headers), "row %d", i)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	written, err := samples.Write(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(samples.Definitions()), written)

	t.Run("WorkbooksReadBack", func(t *testing.T) {
		for _, def := range samples.Definitions() {
			f, err := excelize.OpenFile(filepath.Join(dir, def.Name+".xlsx"))
			require.NoError(t, err, def.Name)

			rows, err := f.GetRows(def.Sheet)
			require.NoError(t, err)
			require.NotEmpty(t, rows)
			assert.Equal(t, def.Headers, rows[0])
			assert.Len(t, rows, len(def.Rows)+1)

			require.NoError(t, f.Close())
		}
	})
}
