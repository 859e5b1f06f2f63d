package export

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for the preview surface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the export preview feature.
func NewFeature(store *Store, logger *zap.Logger) *Feature {
	return &Feature{
		store:   store,
		handler: NewHandler(store, logger),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "export-preview"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
