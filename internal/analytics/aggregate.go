// Package analytics computes the dashboard aggregates (market share, price
// statistics, dimensional breakdowns) over enriched inventory snapshots.
package analytics

import (
	"sort"

	"rvintel-service/internal/model"
)

// Per-dimension result caps, sized to what the dashboards render. States get
// headroom for all US states plus Canadian provinces.
const (
	limitRVType      = 10
	limitDealerGroup = 10
	limitMaker       = 10
	limitState       = 65
	limitRegion      = 10
	limitCity        = 20
)

// AggregationItem is one group in a dimensional breakdown.
type AggregationItem struct {
	Name         string   `json:"name"`
	Count        int      `json:"count"`
	TotalValue   float64  `json:"total_value"`
	AvgPrice     float64  `json:"avg_price"`
	MinPrice     float64  `json:"min_price"`
	MaxPrice     float64  `json:"max_price"`
	AvgDaysOnLot *float64 `json:"avg_days_on_lot,omitempty"`
}

// AggregatedSummary is the full aggregation payload for one filtered slice
// of inventory.
type AggregatedSummary struct {
	TotalUnits    int               `json:"total_units"`
	TotalValue    float64           `json:"total_value"`
	AvgPrice      float64           `json:"avg_price"`
	MinPrice      float64           `json:"min_price"`
	MaxPrice      float64           `json:"max_price"`
	ByRVType      []AggregationItem `json:"by_rv_type"`
	ByDealerGroup []AggregationItem `json:"by_dealer_group"`
	ByMaker       []AggregationItem `json:"by_manufacturer"`
	ByCondition   []AggregationItem `json:"by_condition"`
	ByState       []AggregationItem `json:"by_state"`
	ByRegion      []AggregationItem `json:"by_region"`
	ByCity        []AggregationItem `json:"by_city"`
}

// Aggregate computes the summary over the given units. Zero-priced units
// count toward group sizes but are excluded from price statistics.
func Aggregate(units []model.EnrichedUnit) AggregatedSummary {
	summary := AggregatedSummary{
		TotalUnits:    len(units),
		ByRVType:      aggregateBy(units, func(u model.EnrichedUnit) string { return u.RVType }, limitRVType),
		ByDealerGroup: aggregateBy(units, func(u model.EnrichedUnit) string { return u.DealerGroup }, limitDealerGroup),
		ByMaker:       aggregateBy(units, func(u model.EnrichedUnit) string { return u.Manufacturer }, limitMaker),
		ByCondition:   aggregateBy(units, func(u model.EnrichedUnit) string { return u.Condition }, 0),
		ByState:       aggregateBy(units, func(u model.EnrichedUnit) string { return u.State }, limitState),
		ByRegion:      aggregateBy(units, func(u model.EnrichedUnit) string { return u.Region }, limitRegion),
		ByCity:        aggregateBy(units, func(u model.EnrichedUnit) string { return u.City }, limitCity),
	}

	priced := 0
	for _, u := range units {
		summary.TotalValue += u.Price
		if u.Price <= 0 {
			continue
		}
		priced++
		if summary.MinPrice == 0 || u.Price < summary.MinPrice {
			summary.MinPrice = u.Price
		}
		if u.Price > summary.MaxPrice {
			summary.MaxPrice = u.Price
		}
	}
	if priced > 0 {
		summary.AvgPrice = summary.TotalValue / float64(priced)
	}
	return summary
}

type groupAccumulator struct {
	count      int
	totalValue float64
	priced     int
	pricedSum  float64
	minPrice   float64
	maxPrice   float64
	daysSum    int
	daysCount  int
}

// aggregateBy groups units by the key function, sorted by count descending
// (name ascending on ties, so output is deterministic) and capped at limit
// when limit > 0. Units whose key is empty are left out of the breakdown.
func aggregateBy(units []model.EnrichedUnit, key func(model.EnrichedUnit) string, limit int) []AggregationItem {
	groups := make(map[string]*groupAccumulator)
	for _, u := range units {
		name := key(u)
		if name == "" {
			continue
		}
		acc, ok := groups[name]
		if !ok {
			acc = &groupAccumulator{}
			groups[name] = acc
		}
		acc.count++
		acc.totalValue += u.Price
		if u.Price > 0 {
			acc.priced++
			acc.pricedSum += u.Price
			if acc.minPrice == 0 || u.Price < acc.minPrice {
				acc.minPrice = u.Price
			}
			if u.Price > acc.maxPrice {
				acc.maxPrice = u.Price
			}
		}
		if u.DaysOnLot > 0 {
			acc.daysSum += u.DaysOnLot
			acc.daysCount++
		}
	}

	items := make([]AggregationItem, 0, len(groups))
	for name, acc := range groups {
		item := AggregationItem{
			Name:       name,
			Count:      acc.count,
			TotalValue: acc.totalValue,
			MinPrice:   acc.minPrice,
			MaxPrice:   acc.maxPrice,
		}
		if acc.priced > 0 {
			item.AvgPrice = acc.pricedSum / float64(acc.priced)
		}
		if acc.daysCount > 0 {
			avgDays := float64(acc.daysSum) / float64(acc.daysCount)
			item.AvgDaysOnLot = &avgDays
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
