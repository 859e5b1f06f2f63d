package export

import (
	"strconv"

	"excel-exporter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the read-only preview routes over the exported documents.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new preview handler.
func NewHandler(store *Store, log *zap.Logger) *Handler {
	return &Handler{store: store, logger: log}
}

// RegisterRoutes registers the preview routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tables")
	group.Get("/", h.HandleListTables)
	group.Get("/:name", h.HandleGetTable)
	group.Get("/:name/rows/:id", h.HandleGetRow)
}

// HandleListTables lists the loaded tables with row counts.
func (h *Handler) HandleListTables(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	out := make([]fiber.Map, 0)
	for _, name := range h.store.Tables() {
		t, _ := h.store.Get(name)
		out = append(out, fiber.Map{
			"name":     t.Name,
			"rows":     len(t.Items),
			"id_field": t.IDField,
			"indexed":  len(t.ByID),
		})
	}

	l.Info("Listed tables", zap.Int("count", len(out)))
	return c.JSON(fiber.Map{"tables": out})
}

// HandleGetTable dumps one table's rows. Passing ?field=&value= narrows the
// dump to the rows whose field matches the value under its stored type.
func (h *Handler) HandleGetTable(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("name")

	t, ok := h.store.Get(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "table not found"})
	}

	items := t.Items
	if field := c.Query("field"); field != "" {
		items = h.store.FilterByField(name, field, c.Query("value"))
		if items == nil {
			items = []map[string]any{}
		}
	}

	l.Info("Served table", zap.String("table", name), zap.Int("rows", len(items)))
	return c.JSON(fiber.Map{"name": t.Name, "items": items})
}

// HandleGetRow returns one row by its identifier.
func (h *Handler) HandleGetRow(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("name")

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id must be an integer"})
	}

	row, ok := h.store.GetByID(name, id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "row not found"})
	}

	l.Info("Served row", zap.String("table", name), zap.Int("id", id))
	return c.JSON(row)
}
