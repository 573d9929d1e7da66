package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rvintel-service/internal/cache"
	"rvintel-service/internal/model"
)

// Handler serves the dashboard API from the session cache.
type Handler struct {
	cache *cache.Cache
}

// New creates a Handler over the given cache.
func New(c *cache.Cache) *Handler {
	return &Handler{cache: c}
}

// snapshot returns the current snapshot or replies 503 when the first load
// has not completed yet.
func (h *Handler) snapshot(c echo.Context) (*cache.Snapshot, bool) {
	snap, ok := h.cache.Get()
	if !ok {
		_ = c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "inventory snapshot not loaded yet",
		})
		return nil, false
	}
	return snap, true
}

// parseFilter builds the inventory filter from query parameters. Repeated
// parameters become list filters; price bounds must parse as numbers.
func parseFilter(c echo.Context) (model.InventoryFilter, error) {
	filter := model.InventoryFilter{
		Dealership:   stringParam(c, "dealer"),
		DealerGroup:  stringParam(c, "dealer_group"),
		RVType:       stringParam(c, "rv_class"),
		Manufacturer: stringParam(c, "manufacturer"),
		Condition:    stringParam(c, "condition"),
		State:        stringParam(c, "state"),
	}

	minPrice, err := numberParam(c, "min_price")
	if err != nil {
		return filter, err
	}
	filter.MinPrice = minPrice

	maxPrice, err := numberParam(c, "max_price")
	if err != nil {
		return filter, err
	}
	filter.MaxPrice = maxPrice

	return filter, nil
}

func stringParam(c echo.Context, name string) model.FilterValue {
	values := c.QueryParams()[name]
	switch len(values) {
	case 0:
		return model.NoFilter()
	case 1:
		return model.StringFilter(values[0])
	default:
		return model.StringListFilter(values)
	}
}

func numberParam(c echo.Context, name string) (model.FilterValue, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return model.NoFilter(), nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return model.NoFilter(), echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return model.NumberFilter(value), nil
}
