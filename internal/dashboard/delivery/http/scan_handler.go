package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// ScanHandler handles HTTP requests for the scan snapshot.
type ScanHandler struct {
	scanService service.ScanService
	logger      *logger.Logger
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scanService service.ScanService, logger *logger.Logger) *ScanHandler {
	return &ScanHandler{scanService: scanService, logger: logger}
}

// RegisterRoutes registers the scan routes to the Echo group.
func (h *ScanHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/data", h.GetData)
	g.GET("/refresh", h.Refresh)
	g.GET("/export", h.Export)
}

// GetData returns the cached snapshot annotated with position sizing.
func (h *ScanHandler) GetData(c echo.Context) error {
	snap, err := h.scanService.GetSnapshot(c.Request().Context(), false)
	if err != nil {
		h.logger.Error("Failed to get snapshot", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch data"})
	}
	return c.JSON(http.StatusOK, snap)
}

// Refresh forces a fresh fetch of the snapshot.
func (h *ScanHandler) Refresh(c echo.Context) error {
	snap, err := h.scanService.GetSnapshot(c.Request().Context(), true)
	if err != nil {
		h.logger.Error("Failed to refresh snapshot", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to refresh data"})
	}
	return c.JSON(http.StatusOK, snap)
}

// Export streams the snapshot as CSV, optionally filtered by ticker.
func (h *ScanHandler) Export(c echo.Context) error {
	data, err := h.scanService.ExportCSV(c.Request().Context(), c.QueryParam("filter"))
	if err != nil {
		h.logger.Error("Failed to export snapshot", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch data"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", service.ExportFilename(time.Now())))
	return c.Blob(http.StatusOK, "text/csv", data)
}
