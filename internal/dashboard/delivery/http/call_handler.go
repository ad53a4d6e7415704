package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

// CallHandler handles HTTP requests for covered-call trades.
type CallHandler struct {
	callService service.CoveredCallService
	logger      *logger.Logger
}

// NewCallHandler creates a new CallHandler.
func NewCallHandler(callService service.CoveredCallService, logger *logger.Logger) *CallHandler {
	return &CallHandler{callService: callService, logger: logger}
}

// RegisterRoutes registers the covered-call routes to the Echo group.
func (h *CallHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetTrades)
	g.POST("", h.AddTrade)
	g.PATCH("/:id", h.CloseTrade)
	g.DELETE("/:id", h.DeleteTrade)
}

func (h *CallHandler) GetTrades(c echo.Context) error {
	resp, err := h.callService.GetTrades(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get covered calls", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CallHandler) AddTrade(c echo.Context) error {
	var req dto.CreateCallRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	trade, err := h.callService.AddTrade(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CreateCallResponse{OK: true, Trade: trade})
}

func (h *CallHandler) CloseTrade(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid trade ID"})
	}

	var req dto.CloseCallRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if _, err := h.callService.CloseTrade(c.Request().Context(), id, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *CallHandler) DeleteTrade(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid trade ID"})
	}

	if err := h.callService.DeleteTrade(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
