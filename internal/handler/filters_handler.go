package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rvintel-service/internal/enrich"
	"rvintel-service/internal/model"
)

// FiltersResponse is the filter option lists the dashboard renders its
// dropdowns from, plus when the backing snapshot was loaded.
type FiltersResponse struct {
	Filters  model.FilterOptions `json:"filters"`
	LoadedAt time.Time           `json:"loaded_at"`
}

// GetFilters handles the filter dropdown options
func (h *Handler) GetFilters(c echo.Context) error {
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	return c.JSON(http.StatusOK, FiltersResponse{
		Filters:  enrich.FilterOptions(snap.Products, snap.Dealerships),
		LoadedAt: snap.LoadedAt,
	})
}
