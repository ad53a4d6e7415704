package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/config"
)

// SystemHandler serves the health check and the quote placeholder.
type SystemHandler struct {
	cfg *config.Config
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// RegisterRoutes registers the system routes to the Echo group.
func (h *SystemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/quotes", h.Quotes)
}

func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "app": h.cfg.App.Name})
}

// Quotes reports that live quote lookup is not wired to a market data
// provider.
func (h *SystemHandler) Quotes(c echo.Context) error {
	if c.QueryParam("tickers") == "" {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusNotImplemented, echo.Map{"error": "Market data API not configured"})
}
