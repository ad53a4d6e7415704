package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// EarningsHandler handles HTTP requests for earnings dates.
type EarningsHandler struct {
	earningsService service.EarningsService
	logger          *logger.Logger
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(earningsService service.EarningsService, logger *logger.Logger) *EarningsHandler {
	return &EarningsHandler{earningsService: earningsService, logger: logger}
}

// RegisterRoutes registers the earnings routes to the Echo group.
func (h *EarningsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetEarnings)
	g.POST("", h.SetEarnings)
	g.DELETE("/:ticker", h.DeleteEarnings)
}

func (h *EarningsHandler) GetEarnings(c echo.Context) error {
	earnings, err := h.earningsService.GetEarnings(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get earnings dates", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, earnings)
}

func (h *EarningsHandler) SetEarnings(c echo.Context) error {
	var req dto.SetEarningsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.earningsService.SetEarnings(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EarningsHandler) DeleteEarnings(c echo.Context) error {
	if err := h.earningsService.DeleteEarnings(c.Request().Context(), c.Param("ticker")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
