package model

// InventoryFact is one row of the fact_inventory_currents warehouse table:
// one unit currently on a dealer lot. Numeric columns arrive string-encoded
// (an upstream convention) and are parsed defensively during enrichment.
type InventoryFact struct {
	StockNumber       *string `json:"stock_number"`
	ProductSkey       *int64  `json:"dim_product_model_skey"`
	DealershipSkey    *int64  `json:"dim_dealership_skey"`
	Price             *string `json:"price"`
	DaysOnLot         *int    `json:"days_on_lot"`
	Condition         *string `json:"condition"`
	OverpricedUnit    *int    `json:"overpriced_unit"`
	PercentOverMedian *string `json:"percent_over_median"`
	FirstSeenDate     *string `json:"first_seen_date"`
}
