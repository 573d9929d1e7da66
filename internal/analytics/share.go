package analytics

// ThorBrands are the manufacturers belonging to the Thor Industries family,
// used for the brand-share-vs-market comparison on the competitive dashboard.
var ThorBrands = []string{
	"THOR MOTOR COACH",
	"JAYCO",
	"AIRSTREAM",
	"KEYSTONE",
	"HEARTLAND",
	"DUTCHMEN",
	"CROSSROADS",
	"ENTEGRA COACH",
	"HIGHLAND RIDGE",
	"CRUISER RV",
	"DRV LUXURY SUITES",
	"TIFFIN",
	"VANLEIGH",
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// ConditionSplit is the new/used composition of a pre-aggregated condition
// breakdown.
type ConditionSplit struct {
	NewCount   int     `json:"new_count"`
	UsedCount  int     `json:"used_count"`
	TotalUnits int     `json:"total_units"`
	NewPct     float64 `json:"new_pct"`
	UsedPct    float64 `json:"used_pct"`
}

// SplitByCondition derives the new/used split from a by_condition payload.
func SplitByCondition(byCondition []AggregationItem) ConditionSplit {
	split := ConditionSplit{}
	for _, item := range byCondition {
		split.TotalUnits += item.Count
		switch item.Name {
		case "NEW":
			split.NewCount += item.Count
		case "USED":
			split.UsedCount += item.Count
		}
	}
	split.NewPct = Percent(float64(split.NewCount), float64(split.TotalUnits))
	split.UsedPct = Percent(float64(split.UsedCount), float64(split.TotalUnits))
	return split
}

// BrandShareResult reports how much of the market a set of brands holds.
type BrandShareResult struct {
	BrandUnits  int     `json:"brand_units"`
	MarketUnits int     `json:"market_units"`
	SharePct    float64 `json:"share_pct"`
}

// BrandShare computes the unit share held by the named brands from a
// by_manufacturer payload. Brand matching is exact on the aggregated name.
func BrandShare(byManufacturer []AggregationItem, brands []string) BrandShareResult {
	members := make(map[string]struct{}, len(brands))
	for _, b := range brands {
		members[b] = struct{}{}
	}

	result := BrandShareResult{}
	for _, item := range byManufacturer {
		result.MarketUnits += item.Count
		if _, ok := members[item.Name]; ok {
			result.BrandUnits += item.Count
		}
	}
	result.SharePct = Percent(float64(result.BrandUnits), float64(result.MarketUnits))
	return result
}
