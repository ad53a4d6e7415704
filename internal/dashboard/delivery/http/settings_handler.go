package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// SettingsHandler handles HTTP requests for scanner settings.
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

// RegisterRoutes registers the settings routes to the Echo group.
func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSettings)
	g.POST("", h.UpdateSettings)
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsService.GetSettings(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get settings", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	settings, err := h.settingsService.UpdateSettings(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
