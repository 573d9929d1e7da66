package enrich

import (
	"strconv"

	"rvintel-service/internal/model"
)

const unknown = "Unknown"

// EnrichInventory joins fact rows against the two dimension lookups and
// returns one fully-resolved unit per fact row with a non-null stock number,
// in input order. A missing or unresolvable dimension row is never an error:
// product and dealership display fields fall back to "Unknown" (or the empty
// string for location and floorplan fields) so the output is always
// renderable without null checks. The join must always succeed; treating a
// missing dimension row as fatal would break the dashboards that consume it.
func EnrichInventory(facts []model.InventoryFact, products ProductLookup, dealerships DealershipLookup) []model.EnrichedUnit {
	units := make([]model.EnrichedUnit, 0, len(facts))
	for _, fact := range facts {
		if fact.StockNumber == nil {
			continue
		}

		unit := model.EnrichedUnit{
			StockNumber:       *fact.StockNumber,
			Condition:         stringOr(fact.Condition, ""),
			Price:             parseFloat(fact.Price),
			DaysOnLot:         intOr(fact.DaysOnLot),
			OverpricedUnit:    fact.OverpricedUnit != nil && *fact.OverpricedUnit == 1,
			PercentOverMedian: parseFloat(fact.PercentOverMedian),
			FirstSeenDate:     stringOr(fact.FirstSeenDate, ""),
			Manufacturer:      unknown,
			Model:             unknown,
			ModelYear:         "",
			RVType:            unknown,
			Floorplan:         "",
			Dealership:        unknown,
			DealerGroup:       unknown,
			City:              "",
			State:             "",
			Region:            unknown,
		}

		if fact.ProductSkey != nil {
			if product, ok := products[*fact.ProductSkey]; ok {
				unit.Manufacturer = stringOr(product.Manufacturer, unknown)
				unit.Model = stringOr(product.Model, unknown)
				unit.ModelYear = stringOr(product.ModelYear, "")
				unit.RVType = stringOr(product.RVType, unknown)
				unit.Floorplan = stringOr(product.Floorplan, "")
				unit.ManufacturerLogo = product.ManufacturerLogo
			}
		}

		if fact.DealershipSkey != nil {
			if dealership, ok := dealerships[*fact.DealershipSkey]; ok {
				unit.Dealership = stringOr(dealership.Dealership, unknown)
				unit.DealerGroup = stringOr(dealership.DealerGroup, unknown)
				unit.City = stringOr(dealership.City, "")
				unit.State = stringOr(dealership.State, "")
				unit.Region = stringOr(dealership.Region, unknown)
			}
		}

		units = append(units, unit)
	}
	return units
}

// parseFloat parses a string-encoded decimal, defaulting to 0 on null or
// unparsable input.
func parseFloat(s *string) float64 {
	if s == nil {
		return 0
	}
	value, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return 0
	}
	return value
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func intOr(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
