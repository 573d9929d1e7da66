package model

// EnrichedUnit is the join output served to dashboards: every fact scalar
// plus the resolved dimension display fields. All fields are concrete values
// so rendering code never needs null checks; the one exception is
// ManufacturerLogo, which stays nil when unresolved because it feeds an
// optional image source rather than display text.
type EnrichedUnit struct {
	StockNumber       string  `json:"stock_number"`
	Condition         string  `json:"condition"`
	Price             float64 `json:"price"`
	DaysOnLot         int     `json:"days_on_lot"`
	OverpricedUnit    bool    `json:"overpriced_unit"`
	PercentOverMedian float64 `json:"percent_over_median"`
	FirstSeenDate     string  `json:"first_seen_date"`

	Manufacturer     string  `json:"manufacturer"`
	Model            string  `json:"model"`
	ModelYear        string  `json:"model_year"`
	RVType           string  `json:"rv_type"`
	Floorplan        string  `json:"floorplan"`
	ManufacturerLogo *string `json:"manufacturer_logo"`

	Dealership  string `json:"dealership"`
	DealerGroup string `json:"dealer_group"`
	City        string `json:"city"`
	State       string `json:"state"`
	Region      string `json:"region"`
}
