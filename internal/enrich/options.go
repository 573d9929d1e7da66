package enrich

import (
	"sort"

	"rvintel-service/internal/model"
)

// Conditions are the only two values the warehouse produces; enumerating the
// fact table just to rediscover them is not worth the scan.
var conditions = []string{"NEW", "USED"}

// FilterOptions collects the distinct filterable values from the dimension
// lookups, each list sorted ascending. Null dimension fields contribute
// nothing.
func FilterOptions(products ProductLookup, dealerships DealershipLookup) model.FilterOptions {
	rvTypes := make(map[string]struct{})
	manufacturers := make(map[string]struct{})
	for _, p := range products {
		addValue(rvTypes, p.RVType)
		addValue(manufacturers, p.Manufacturer)
	}

	states := make(map[string]struct{})
	regions := make(map[string]struct{})
	cities := make(map[string]struct{})
	dealerGroups := make(map[string]struct{})
	for _, d := range dealerships {
		addValue(states, d.State)
		addValue(regions, d.Region)
		addValue(cities, d.City)
		addValue(dealerGroups, d.DealerGroup)
	}

	return model.FilterOptions{
		RVTypes:       sortedKeys(rvTypes),
		States:        sortedKeys(states),
		Regions:       sortedKeys(regions),
		Cities:        sortedKeys(cities),
		Conditions:    conditions,
		DealerGroups:  sortedKeys(dealerGroups),
		Manufacturers: sortedKeys(manufacturers),
	}
}

// DealershipNames returns the sorted distinct dealership names in the lookup.
func DealershipNames(dealerships DealershipLookup) []string {
	names := make(map[string]struct{})
	for _, d := range dealerships {
		addValue(names, d.Dealership)
	}
	return sortedKeys(names)
}

func addValue(set map[string]struct{}, value *string) {
	if value == nil || *value == "" {
		return
	}
	set[*value] = struct{}{}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
