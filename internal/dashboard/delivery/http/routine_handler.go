package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// RoutineHandler handles HTTP requests for the daily routine journal.
type RoutineHandler struct {
	routineService service.RoutineService
	logger         *logger.Logger
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routineService service.RoutineService, logger *logger.Logger) *RoutineHandler {
	return &RoutineHandler{routineService: routineService, logger: logger}
}

// RegisterRoutes registers the routine routes to the Echo group.
func (h *RoutineHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/routine/:date", h.GetRoutine)
	api.POST("/routine/:date", h.SaveRoutine)
	api.GET("/routines", h.GetRoutineDates)
}

func (h *RoutineHandler) GetRoutine(c echo.Context) error {
	entry, err := h.routineService.GetRoutine(c.Request().Context(), c.Param("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *RoutineHandler) SaveRoutine(c echo.Context) error {
	var req dto.SaveRoutineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if _, err := h.routineService.SavePhase(c.Request().Context(), c.Param("date"), &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *RoutineHandler) GetRoutineDates(c echo.Context) error {
	dates, err := h.routineService.GetRoutineDates(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list routine dates", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dates)
}
