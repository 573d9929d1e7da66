package store

import (
	"time"

	"rvintel-service/internal/model"
)

// DealershipRecord is the persisted form of a dealership dimension row.
// Only rows with a surrogate key are persisted; the key is the primary key,
// so a duplicate-keyed refetch keeps the last row, matching lookup-build
// semantics.
type DealershipRecord struct {
	Skey        int64   `json:"dim_dealership_skey" gorm:"primaryKey;column:dim_dealership_skey"`
	DealerID    *string `json:"dealer_id" gorm:"type:varchar(100)"`
	DealerGroup *string `json:"dealer_group" gorm:"type:varchar(255);index"`
	Dealership  *string `json:"dealership" gorm:"type:varchar(255);index"`
	City        *string `json:"city" gorm:"type:varchar(255)"`
	State       *string `json:"state" gorm:"type:varchar(100);index"`
	PostalCode  *string `json:"postal_code" gorm:"type:varchar(20)"`
	County      *string `json:"county" gorm:"type:varchar(255)"`
	Region      *string `json:"region" gorm:"type:varchar(100)"`
	Country     *string `json:"country" gorm:"type:varchar(100)"`
	LogoURL     *string `json:"dealer_logo" gorm:"type:text"`
}

// ProductRecord is the persisted form of a product dimension row.
type ProductRecord struct {
	Skey              int64   `json:"dim_product_model_skey" gorm:"primaryKey;column:dim_product_model_skey"`
	ProductID         *string `json:"product_id" gorm:"type:varchar(100)"`
	ParentCompany     *string `json:"parent_company" gorm:"type:varchar(255)"`
	Division          *string `json:"division" gorm:"type:varchar(255)"`
	Company           *string `json:"company" gorm:"type:varchar(255)"`
	Manufacturer      *string `json:"manufacturer" gorm:"type:varchar(255);index"`
	ModelYear         *string `json:"model_year" gorm:"type:varchar(10)"`
	Model             *string `json:"model" gorm:"type:varchar(255)"`
	Floorplan         *string `json:"floorplan" gorm:"type:varchar(255)"`
	RVType            *string `json:"rv_type" gorm:"type:varchar(100);index"`
	RVSubtype         *string `json:"rv_subtype" gorm:"type:varchar(100)"`
	ManufacturerModel *string `json:"manufacturer_model" gorm:"type:varchar(512)"`
	ManufacturerLogo  *string `json:"manufacturer_logo" gorm:"type:text"`
}

// InventoryRecord is the persisted form of a current-inventory fact row.
// Facts have no natural primary key upstream (stock numbers can be null), so
// rows get a synthetic id.
type InventoryRecord struct {
	ID                uint    `json:"id" gorm:"primarykey"`
	StockNumber       *string `json:"stock_number" gorm:"type:varchar(100);index"`
	ProductSkey       *int64  `json:"dim_product_model_skey" gorm:"column:dim_product_model_skey;index"`
	DealershipSkey    *int64  `json:"dim_dealership_skey" gorm:"column:dim_dealership_skey;index"`
	Price             *string `json:"price" gorm:"type:varchar(32)"`
	DaysOnLot         *int    `json:"days_on_lot"`
	Condition         *string `json:"condition" gorm:"type:varchar(32);index"`
	OverpricedUnit    *int    `json:"overpriced_unit"`
	PercentOverMedian *string `json:"percent_over_median" gorm:"type:varchar(32)"`
	FirstSeenDate     *string `json:"first_seen_date" gorm:"type:varchar(32)"`
}

// SnapshotMeta tracks when the persisted snapshot was taken.
type SnapshotMeta struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

func dealershipRecord(row model.DealershipRow) DealershipRecord {
	return DealershipRecord{
		Skey:        *row.Skey,
		DealerID:    row.DealerID,
		DealerGroup: row.DealerGroup,
		Dealership:  row.Dealership,
		City:        row.City,
		State:       row.State,
		PostalCode:  row.PostalCode,
		County:      row.County,
		Region:      row.Region,
		Country:     row.Country,
		LogoURL:     row.LogoURL,
	}
}

func (r DealershipRecord) row() model.DealershipRow {
	skey := r.Skey
	return model.DealershipRow{
		Skey:        &skey,
		DealerID:    r.DealerID,
		DealerGroup: r.DealerGroup,
		Dealership:  r.Dealership,
		City:        r.City,
		State:       r.State,
		PostalCode:  r.PostalCode,
		County:      r.County,
		Region:      r.Region,
		Country:     r.Country,
		LogoURL:     r.LogoURL,
	}
}

func productRecord(row model.ProductRow) ProductRecord {
	return ProductRecord{
		Skey:              *row.Skey,
		ProductID:         row.ProductID,
		ParentCompany:     row.ParentCompany,
		Division:          row.Division,
		Company:           row.Company,
		Manufacturer:      row.Manufacturer,
		ModelYear:         row.ModelYear,
		Model:             row.Model,
		Floorplan:         row.Floorplan,
		RVType:            row.RVType,
		RVSubtype:         row.RVSubtype,
		ManufacturerModel: row.ManufacturerModel,
		ManufacturerLogo:  row.ManufacturerLogo,
	}
}

func (r ProductRecord) row() model.ProductRow {
	skey := r.Skey
	return model.ProductRow{
		Skey:              &skey,
		ProductID:         r.ProductID,
		ParentCompany:     r.ParentCompany,
		Division:          r.Division,
		Company:           r.Company,
		Manufacturer:      r.Manufacturer,
		ModelYear:         r.ModelYear,
		Model:             r.Model,
		Floorplan:         r.Floorplan,
		RVType:            r.RVType,
		RVSubtype:         r.RVSubtype,
		ManufacturerModel: r.ManufacturerModel,
		ManufacturerLogo:  r.ManufacturerLogo,
	}
}

func inventoryRecord(fact model.InventoryFact) InventoryRecord {
	return InventoryRecord{
		StockNumber:       fact.StockNumber,
		ProductSkey:       fact.ProductSkey,
		DealershipSkey:    fact.DealershipSkey,
		Price:             fact.Price,
		DaysOnLot:         fact.DaysOnLot,
		Condition:         fact.Condition,
		OverpricedUnit:    fact.OverpricedUnit,
		PercentOverMedian: fact.PercentOverMedian,
		FirstSeenDate:     fact.FirstSeenDate,
	}
}

func (r InventoryRecord) fact() model.InventoryFact {
	return model.InventoryFact{
		StockNumber:       r.StockNumber,
		ProductSkey:       r.ProductSkey,
		DealershipSkey:    r.DealershipSkey,
		Price:             r.Price,
		DaysOnLot:         r.DaysOnLot,
		Condition:         r.Condition,
		OverpricedUnit:    r.OverpricedUnit,
		PercentOverMedian: r.PercentOverMedian,
		FirstSeenDate:     r.FirstSeenDate,
	}
}
