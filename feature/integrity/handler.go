package integrity

import (
	"impl-tracker/core/logger"
	"impl-tracker/core/utils"
	"impl-tracker/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.DocumentsReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/documents", h.HandleDocumentsCheck)
	group.Get("/snapshots", h.HandleSnapshotsCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Documents, Snapshots).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if docs, err := h.service.CheckDocuments(); err != nil {
		report["documents"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["documents"] = docs
	}

	if orphans, err := h.service.CheckSnapshots(ctx); err != nil {
		report["snapshots"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshots"] = map[string]interface{}{"status": "ok", "orphaned": orphans}
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the snapshot folders.
// @Summary Check Structure
// @Description Checks if the snapshot folders exist in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDocumentsCheck checks and optionally migrates the documents table.
// @Summary Check Documents Table
// @Description Validates the documents table against the document model. Optionally migrates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Migrate the table"
// @Success 200 {object} checks.DocumentsReport "Documents Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/documents [get]
func (h *Handler) HandleDocumentsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDocuments()
	if err != nil {
		l.Error("Documents check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched && utils.ToBool(c.Query("fix")) {
		if err := h.service.FixDocuments(); err != nil {
			l.Error("Documents migration failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to migrate documents table",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  report.MissingColumns,
		})
	}

	return c.JSON(report)
}

// HandleSnapshotsCheck lists snapshots of objects that no longer exist.
// @Summary Check Snapshots
// @Description Lists object snapshots whose object was deleted from the documents table.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Snapshots Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/snapshots [get]
func (h *Handler) HandleSnapshotsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	orphans, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		l.Error("Snapshots check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":   "checked",
		"orphaned": orphans,
	})
}
