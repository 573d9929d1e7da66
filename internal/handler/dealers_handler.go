package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rvintel-service/internal/enrich"
)

// GetDealers handles the dealership name list
func (h *Handler) GetDealers(c echo.Context) error {
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	dealers := enrich.DealershipNames(snap.Dealerships)
	return c.JSON(http.StatusOK, echo.Map{
		"dealers": dealers,
		"count":   len(dealers),
	})
}
