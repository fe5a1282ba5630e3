package implementation

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new implementation feature.
func NewFeature(documents DocumentStore, snapshots SnapshotStore, f ResultFormatter, logger *zap.Logger) *Feature {
	svc := NewService(documents, snapshots, f, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "implementation"
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

// Service returns the feature's service, used by CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}
