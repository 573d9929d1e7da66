package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rvintel-service/internal/model"
)

func TestFilterOptions(t *testing.T) {
	products := BuildProductLookup([]model.ProductRow{
		{Skey: skey(1), RVType: str("TRAVEL TRAILER"), Manufacturer: str("Jayco")},
		{Skey: skey(2), RVType: str("CLASS A"), Manufacturer: str("Thor Motor Coach")},
		{Skey: skey(3), RVType: str("TRAVEL TRAILER"), Manufacturer: nil},
	})
	dealerships := BuildDealershipLookup([]model.DealershipRow{
		{Skey: skey(1), State: str("Florida"), Region: str("Southeast"), City: str("Tampa"), DealerGroup: str("Lazydays")},
		{Skey: skey(2), State: str("Arizona"), Region: nil, City: str(""), DealerGroup: str("Camping World")},
	})

	options := FilterOptions(products, dealerships)

	assert.Equal(t, []string{"CLASS A", "TRAVEL TRAILER"}, options.RVTypes)
	assert.Equal(t, []string{"Jayco", "Thor Motor Coach"}, options.Manufacturers)
	assert.Equal(t, []string{"Arizona", "Florida"}, options.States)
	assert.Equal(t, []string{"Southeast"}, options.Regions)
	assert.Equal(t, []string{"Tampa"}, options.Cities)
	assert.Equal(t, []string{"Camping World", "Lazydays"}, options.DealerGroups)
	assert.Equal(t, []string{"NEW", "USED"}, options.Conditions)
}

func TestDealershipNames(t *testing.T) {
	dealerships := BuildDealershipLookup([]model.DealershipRow{
		{Skey: skey(1), Dealership: str("Lazydays Tampa")},
		{Skey: skey(2), Dealership: str("Camping World Mesa")},
		{Skey: skey(3), Dealership: nil},
	})

	names := DealershipNames(dealerships)

	assert.Equal(t, []string{"Camping World Mesa", "Lazydays Tampa"}, names)
}
