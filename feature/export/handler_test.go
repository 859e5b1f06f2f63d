package export_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"excel-exporter/feature/export"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := export.NewHandler(newTestStore(t), zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestHandler_ListTables(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, "/tables/")
	assert.Equal(t, http.StatusOK, status)

	tables, ok := body["tables"].([]any)
	require.True(t, ok)
	assert.Len(t, tables, 2)

	first := tables[0].(map[string]any)
	assert.Equal(t, "Actor", first["name"])
	assert.Equal(t, float64(2), first["rows"])
	assert.Equal(t, "Id", first["id_field"])
}

func TestHandler_GetTable(t *testing.T) {
	app := newTestApp(t)

	t.Run("Found", func(t *testing.T) {
		status, body := doRequest(t, app, "/tables/Actor")
		assert.Equal(t, http.StatusOK, status)
		items, ok := body["items"].([]any)
		require.True(t, ok)
		assert.Len(t, items, 2)
	})

	t.Run("FilteredByField", func(t *testing.T) {
		status, body := doRequest(t, app, "/tables/Actor?field=CanFlee&value=true")
		assert.Equal(t, http.StatusOK, status)
		items, ok := body["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, "Rookie", items[0].(map[string]any)["Name"])
	})

	t.Run("FilterWithNoMatchesIsEmpty", func(t *testing.T) {
		status, body := doRequest(t, app, "/tables/Actor?field=Name&value=Nobody")
		assert.Equal(t, http.StatusOK, status)
		items, ok := body["items"].([]any)
		require.True(t, ok)
		assert.Empty(t, items)
	})

	t.Run("NotFound", func(t *testing.T) {
		status, body := doRequest(t, app, "/tables/Nope")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "table not found", body["error"])
	})
}

func TestHandler_GetRow(t *testing.T) {
	app := newTestApp(t)

	t.Run("Found", func(t *testing.T) {
		status, body := doRequest(t, app, "/tables/Actor/rows/1")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Veteran", body["Name"])
	})

	t.Run("UnknownId", func(t *testing.T) {
		status, _ := doRequest(t, app, "/tables/Actor/rows/99")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("NonNumericId", func(t *testing.T) {
		status, body := doRequest(t, app, "/tables/Actor/rows/abc")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "id must be an integer", body["error"])
	})
}
