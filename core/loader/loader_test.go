package loader_test

import (
	"errors"
	"testing"

	"excel-exporter/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &fakeFeature{name: "enabled", enabled: true}
	disabled := &fakeFeature{name: "disabled", enabled: false}
	failing := &fakeFeature{name: "failing", enabled: true, loadErr: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	m := loader.NewManager(zap.NewNop())
	m.Register(enabled)
	m.Register(disabled)
	m.Register(failing)
	m.Register(after)
	m.LoadAll(app)

	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	// A failing feature does not stop the rest from mounting.
	assert.True(t, after.loaded)
}
