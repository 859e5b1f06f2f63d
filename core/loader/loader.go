package loader

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is the contract every mountable feature implements.
type Feature interface {
	// Name returns the feature's identifier, used in logs.
	Name() string
	// IsEnabled reports whether the feature should be mounted.
	IsEnabled() bool
	// Load registers the feature's routes on the given router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty feature registry.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll mounts every enabled feature on the application router.
// A feature that fails to load is reported and skipped; the rest still mount.
func (m *Manager) LoadAll(app fiber.Router) {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			m.logger.Error("Failed to load feature", zap.String("feature", f.Name()), zap.Error(err))
			continue
		}
		m.logger.Info("Feature loaded", zap.String("feature", f.Name()))
	}
}
