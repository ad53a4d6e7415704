package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// AlertHandler handles HTTP requests for price alerts.
type AlertHandler struct {
	alertService service.AlertService
	logger       *logger.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService service.AlertService, logger *logger.Logger) *AlertHandler {
	return &AlertHandler{alertService: alertService, logger: logger}
}

// RegisterRoutes registers the alert routes to the Echo group.
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAlerts)
	g.POST("", h.AddAlert)
	g.DELETE("/:index", h.DeleteAlert)
}

func (h *AlertHandler) GetAlerts(c echo.Context) error {
	alerts, err := h.alertService.GetAlerts(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get alerts", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) AddAlert(c echo.Context) error {
	var req dto.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	alert, err := h.alertService.AddAlert(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid index"})
	}

	deleted, err := h.alertService.DeleteAlert(c.Request().Context(), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DeleteAlertResponse{Deleted: deleted})
}
