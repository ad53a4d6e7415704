// Package http contains the Echo handlers of the dashboard service.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/dto"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
)

// respondError maps a service error onto the transport: validation failures
// are 400 with their reason, unknown records 404, everything else 500.
func respondError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Reason})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	default:
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
