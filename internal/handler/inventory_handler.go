package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rvintel-service/internal/analytics"
	"rvintel-service/internal/model"
	"rvintel-service/pkg/logger"
)

const (
	defaultLimit = 100
	maxLimit     = 10000
)

// InventoryResponse is one page of filtered enriched inventory. NextOffset
// is the cursor for the dashboard's load-more; nil means the result set is
// exhausted.
type InventoryResponse struct {
	Items          []model.EnrichedUnit `json:"items"`
	Total          int                  `json:"total"`
	Offset         int                  `json:"offset"`
	NextOffset     *int                 `json:"next_offset"`
	DealersQueried int                  `json:"dealers_queried"`
}

// GetInventory handles filtered, paginated inventory listing
func (h *Handler) GetInventory(c echo.Context) error {
	log := logger.FromContext(c)

	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	limit, offset, err := parsePage(c)
	if err != nil {
		return err
	}

	matched := filter.Apply(snap.Units)
	page := matched
	if offset >= len(matched) {
		page = nil
	} else {
		page = matched[offset:]
	}
	var nextOffset *int
	if len(page) > limit {
		page = page[:limit]
		next := offset + limit
		nextOffset = &next
	}

	dealers := make(map[string]struct{})
	for _, u := range page {
		if u.Dealership != "" {
			dealers[u.Dealership] = struct{}{}
		}
	}

	log.Info("Inventory page served",
		zap.Int("matched", len(matched)),
		zap.Int("returned", len(page)),
		zap.Int("offset", offset))
	return c.JSON(http.StatusOK, InventoryResponse{
		Items:          page,
		Total:          len(matched),
		Offset:         offset,
		NextOffset:     nextOffset,
		DealersQueried: len(dealers),
	})
}

// GetInventorySummary handles the headline statistics card
func (h *Handler) GetInventorySummary(c echo.Context) error {
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	summary := analytics.Summarize(filter.Apply(snap.Units))
	return c.JSON(http.StatusOK, echo.Map{"summary": summary})
}

// AggregatedResponse is the full aggregation payload plus the Thor-family
// share derived from the manufacturer breakdown.
type AggregatedResponse struct {
	analytics.AggregatedSummary
	ThorShare analytics.BrandShareResult `json:"thor_share"`
}

// GetAggregated handles the dimensional breakdown dashboards
func (h *Handler) GetAggregated(c echo.Context) error {
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	summary := analytics.Aggregate(filter.Apply(snap.Units))
	return c.JSON(http.StatusOK, AggregatedResponse{
		AggregatedSummary: summary,
		ThorShare:         analytics.BrandShare(summary.ByMaker, analytics.ThorBrands),
	})
}

// TotalsResponse is the fast NEW/USED totals payload.
type TotalsResponse struct {
	TotalUnits  int                         `json:"total_units"`
	TotalValue  float64                     `json:"total_value"`
	ByCondition []analytics.AggregationItem `json:"by_condition"`
	Split       analytics.ConditionSplit    `json:"split"`
}

// GetTotals handles the new/used totals strip
func (h *Handler) GetTotals(c echo.Context) error {
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	summary := analytics.Aggregate(snap.Units)
	return c.JSON(http.StatusOK, TotalsResponse{
		TotalUnits:  summary.TotalUnits,
		TotalValue:  summary.TotalValue,
		ByCondition: summary.ByCondition,
		Split:       analytics.SplitByCondition(summary.ByCondition),
	})
}

func parsePage(c echo.Context) (limit, offset int, err error) {
	limit = defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 10000")
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
