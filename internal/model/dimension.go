package model

// DealershipRow is one row of the dim_dealerships warehouse table. Every
// field is nullable upstream, so all fields are pointers; rows are treated
// as read-only reference data once fetched.
type DealershipRow struct {
	Skey        *int64  `json:"dim_dealership_skey"`
	DealerID    *string `json:"dealer_id"`
	DealerGroup *string `json:"dealer_group"`
	Dealership  *string `json:"dealership"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PostalCode  *string `json:"postal_code"`
	County      *string `json:"county"`
	Region      *string `json:"region"`
	Country     *string `json:"country"`
	LogoURL     *string `json:"dealer_logo"`
}

// ProductRow is one row of the dim_product_models warehouse table.
type ProductRow struct {
	Skey              *int64  `json:"dim_product_model_skey"`
	ProductID         *string `json:"product_id"`
	ParentCompany     *string `json:"parent_company"`
	Division          *string `json:"division"`
	Company           *string `json:"company"`
	Manufacturer      *string `json:"manufacturer"`
	ModelYear         *string `json:"model_year"`
	Model             *string `json:"model"`
	Floorplan         *string `json:"floorplan"`
	RVType            *string `json:"rv_type"`
	RVSubtype         *string `json:"rv_subtype"`
	ManufacturerModel *string `json:"manufacturer_model"`
	ManufacturerLogo  *string `json:"manufacturer_logo"`
}
