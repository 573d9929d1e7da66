package analytics

import "rvintel-service/internal/model"

// InventorySummary is the headline card payload: distinct counts plus price
// range over one slice of inventory.
type InventorySummary struct {
	TotalUnits      int            `json:"total_units"`
	UniqueMakes     int            `json:"unique_makes"`
	UniqueModels    int            `json:"unique_models"`
	DealersWithData int            `json:"dealers_with_data"`
	AvgPrice        float64        `json:"avg_price"`
	MinPrice        float64        `json:"min_price"`
	MaxPrice        float64        `json:"max_price"`
	ByClass         map[string]int `json:"by_class"`
	ByCondition     map[string]int `json:"by_condition"`
}

// Summarize computes the headline statistics. Defaulted "Unknown" dimension
// values still count as a make/model/dealer so the card totals always add up
// to the unit count.
func Summarize(units []model.EnrichedUnit) InventorySummary {
	summary := InventorySummary{
		ByClass:     make(map[string]int),
		ByCondition: make(map[string]int),
	}

	makes := make(map[string]struct{})
	models := make(map[string]struct{})
	dealers := make(map[string]struct{})
	priced := 0
	total := 0.0

	for _, u := range units {
		summary.TotalUnits++
		makes[u.Manufacturer] = struct{}{}
		models[u.Model] = struct{}{}
		dealers[u.Dealership] = struct{}{}
		if u.RVType != "" {
			summary.ByClass[u.RVType]++
		}
		if u.Condition != "" {
			summary.ByCondition[u.Condition]++
		}
		if u.Price > 0 {
			priced++
			total += u.Price
			if summary.MinPrice == 0 || u.Price < summary.MinPrice {
				summary.MinPrice = u.Price
			}
			if u.Price > summary.MaxPrice {
				summary.MaxPrice = u.Price
			}
		}
	}

	summary.UniqueMakes = len(makes)
	summary.UniqueModels = len(models)
	summary.DealersWithData = len(dealers)
	if priced > 0 {
		summary.AvgPrice = total / float64(priced)
	}
	return summary
}
