package implementation

import (
	"errors"

	"impl-tracker/core/compare"
	"impl-tracker/core/formatter"
	"impl-tracker/core/logger"
	"impl-tracker/core/utils"
	"impl-tracker/feature/implementation/store"
	"impl-tracker/feature/objects/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompareResponse is the formatted outcome of a comparison.
type CompareResponse struct {
	SnapshotExists bool                   `json:"snapshotExists"`
	Differences    []formatter.Difference `json:"differences"`
}

// Handler handles HTTP requests for implementation tracking.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the implementation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/implementation")
	group.Get("/maps/:mapId/markers/:markerKind/:markerId/compare", h.HandleCompareMarker)
	group.Post("/maps/:mapId/markers/:markerKind/:markerId/mark", h.HandleMarkMarker)
	group.Get("/:kind/:id/compare", h.HandleCompare)
	group.Get("/:kind/:id/status", h.HandleStatus)
	group.Post("/:kind/:id/mark", h.HandleMark)
	group.Put("/:kind/:id", h.HandleImport)
}

// HandleCompare compares an object with its snapshot.
// @Summary Compare Object
// @Description Compares the current state of an object with the snapshot taken when it was marked implemented.
// @Tags implementation
// @Produce json
// @Param kind path string true "Object kind (npc, item, skill, dialog, quest)"
// @Param id path string true "Object id"
// @Param raw query boolean false "Return the unformatted difference tree"
// @Success 200 {object} CompareResponse "Formatted differences"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /implementation/{kind}/{id}/compare [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id := c.Params("id")

	result, err := h.service.Compare(c.Context(), kind, id)
	if err != nil {
		l.Error("Comparison failed", zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
		return h.respondError(c, err)
	}

	return h.respondResult(c, l, result)
}

// HandleCompareMarker compares a map marker with its snapshot.
// @Summary Compare Marker
// @Description Compares the current state of a map marker with its snapshot.
// @Tags implementation
// @Produce json
// @Param mapId path string true "Map id"
// @Param markerKind path string true "Marker kind (npc, item, quest, note)"
// @Param markerId path string true "Marker id"
// @Param raw query boolean false "Return the unformatted difference tree"
// @Success 200 {object} CompareResponse "Formatted differences"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /implementation/maps/{mapId}/markers/{markerKind}/{markerId}/compare [get]
func (h *Handler) HandleCompareMarker(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	kind, err := models.ParseMarkerKind(c.Params("markerKind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	mapID, markerID := c.Params("mapId"), c.Params("markerId")

	result, err := h.service.CompareMarker(c.Context(), mapID, markerID, kind, nil)
	if err != nil {
		l.Error("Marker comparison failed",
			zap.String("map", mapID),
			zap.String("kind", string(kind)),
			zap.String("id", markerID),
			zap.Error(err),
		)
		return h.respondError(c, err)
	}

	return h.respondResult(c, l, result)
}

// HandleStatus reports whether an object is implemented.
// @Summary Implementation Status
// @Description Reports whether a snapshot exists and matches the current state of the object.
// @Tags implementation
// @Produce json
// @Param kind path string true "Object kind (npc, item, skill, dialog, quest)"
// @Param id path string true "Object id"
// @Success 200 {object} map[string]bool "Status"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /implementation/{kind}/{id}/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	implemented, err := h.service.IsImplemented(c.Context(), kind, c.Params("id"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Status check failed", zap.Error(err))
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"implemented": implemented})
}

// HandleMark marks an object as implemented.
// @Summary Mark Object Implemented
// @Description Stores the current state of the object as its snapshot.
// @Tags implementation
// @Produce json
// @Param kind path string true "Object kind (npc, item, skill, dialog, quest)"
// @Param id path string true "Object id"
// @Success 200 {object} map[string]string "Marked"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /implementation/{kind}/{id}/mark [post]
func (h *Handler) HandleMark(c *fiber.Ctx) error {
	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id := c.Params("id")

	if err := h.service.MarkImplemented(c.Context(), kind, id); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Marking failed", zap.Error(err))
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": "marked", "kind": string(kind), "id": id})
}

// HandleMarkMarker marks a map marker as implemented.
// @Summary Mark Marker Implemented
// @Description Stores the current state of the map marker as its snapshot.
// @Tags implementation
// @Produce json
// @Param mapId path string true "Map id"
// @Param markerKind path string true "Marker kind (npc, item, quest, note)"
// @Param markerId path string true "Marker id"
// @Success 200 {object} map[string]string "Marked"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /implementation/maps/{mapId}/markers/{markerKind}/{markerId}/mark [post]
func (h *Handler) HandleMarkMarker(c *fiber.Ctx) error {
	kind, err := models.ParseMarkerKind(c.Params("markerKind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	mapID, markerID := c.Params("mapId"), c.Params("markerId")

	if err := h.service.MarkMarkerImplemented(c.Context(), mapID, markerID, kind); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Marking marker failed", zap.Error(err))
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": "marked", "map": mapID, "kind": string(kind), "id": markerID})
}

func (h *Handler) respondResult(c *fiber.Ctx, l *zap.Logger, result *compare.Result) error {
	if utils.ToBool(c.Query("raw")) {
		return c.JSON(result)
	}

	diffs, err := h.service.FormatCompareResult(c.Context(), result.Differences)
	if err != nil {
		l.Error("Formatting failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if diffs == nil {
		diffs = []formatter.Difference{}
	}

	return c.JSON(CompareResponse{
		SnapshotExists: result.SnapshotExists,
		Differences:    diffs,
	})
}

// HandleImport stores the request body as the current state of an object or map.
// @Summary Import Document
// @Description Stores a JSON document as the current state of an object (npc, item, skill, dialog, quest) or a map.
// @Tags implementation
// @Accept json
// @Produce json
// @Param kind path string true "Document kind (npc, item, skill, dialog, quest, map)"
// @Param id path string true "Document id"
// @Success 200 {object} map[string]string "Imported"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /implementation/{kind}/{id} [put]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	kind, err := models.ParseDocumentKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id := c.Params("id")

	// fasthttp reuses the body buffer after the handler returns
	payload := append([]byte(nil), c.Body()...)

	if err := h.service.ImportDocument(c.Context(), kind, id, payload); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Import failed",
			zap.String("kind", string(kind)),
			zap.String("id", id),
			zap.Error(err),
		)
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": "imported", "kind": string(kind), "id": id})
}

func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, store.ErrUnknownKind), errors.Is(err, ErrInvalidPayload):
		status = fiber.StatusBadRequest
	case errors.Is(err, compare.ErrIncompatibleTypes):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
