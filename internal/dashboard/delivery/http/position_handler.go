package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// PositionHandler handles HTTP requests for stock positions.
type PositionHandler struct {
	positionService service.StockPositionService
	logger          *logger.Logger
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionService service.StockPositionService, logger *logger.Logger) *PositionHandler {
	return &PositionHandler{positionService: positionService, logger: logger}
}

// RegisterRoutes registers the position routes to the Echo group.
func (h *PositionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetPositions)
	g.POST("", h.AddPosition)
	g.PATCH("/:id", h.UpdatePosition)
	g.DELETE("/:id", h.DeletePosition)
}

func (h *PositionHandler) GetPositions(c echo.Context) error {
	resp, err := h.positionService.GetPositions(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get positions", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PositionHandler) AddPosition(c echo.Context) error {
	var req dto.CreatePositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	position, err := h.positionService.AddPosition(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CreatePositionResponse{OK: true, Position: position})
}

func (h *PositionHandler) UpdatePosition(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}

	var req dto.UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if _, err := h.positionService.UpdatePosition(c.Request().Context(), id, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *PositionHandler) DeletePosition(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}

	if err := h.positionService.DeletePosition(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
