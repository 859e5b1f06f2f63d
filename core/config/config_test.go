package config_test

import (
	"testing"

	"excel-exporter/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "DataTables", cfg.Export.InputDir)
	assert.Equal(t, "GamePro/Assets/Resources/ExcelImporter", cfg.Export.DataDir)
	assert.Equal(t, "GamePro/Assets/Code/ExcelImporter", cfg.Export.CodeDir)
	assert.Equal(t, "ExcelImporter", cfg.Export.Namespace)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "gamedata", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("EXPORT_INPUT_DIR", "Custom/Tables")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_BUCKET", "staging-gamedata")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Custom/Tables", cfg.Export.InputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "staging-gamedata", cfg.Storage.Bucket)
}
