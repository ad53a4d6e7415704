package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// HistoryHandler handles HTTP requests for archived scan snapshots.
type HistoryHandler struct {
	historyService service.HistoryService
	logger         *logger.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService, logger *logger.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, logger: logger}
}

// RegisterRoutes registers the history routes to the Echo group.
func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListSnapshots)
	g.GET("/:filename", h.GetSnapshot)
}

func (h *HistoryHandler) ListSnapshots(c echo.Context) error {
	entries, err := h.historyService.ListSnapshots(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *HistoryHandler) GetSnapshot(c echo.Context) error {
	snap, err := h.historyService.GetSnapshot(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
