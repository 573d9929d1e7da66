package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvintel-service/internal/model"
)

func skey(v int64) *int64 { return &v }
func str(v string) *string { return &v }

func TestBuildProductLookup(t *testing.T) {
	t.Run("one entry per non-null key", func(t *testing.T) {
		rows := []model.ProductRow{
			{Skey: skey(1), Manufacturer: str("Jayco")},
			{Skey: skey(2), Manufacturer: str("Airstream")},
			{Skey: nil, Manufacturer: str("ghost")},
		}

		lookup := BuildProductLookup(rows)

		require.Len(t, lookup, 2)
		assert.Equal(t, "Jayco", *lookup[1].Manufacturer)
		assert.Equal(t, "Airstream", *lookup[2].Manufacturer)
	})

	t.Run("null keyed rows are skipped", func(t *testing.T) {
		rows := []model.ProductRow{
			{Skey: nil},
			{Skey: nil},
		}

		assert.Empty(t, BuildProductLookup(rows))
	})

	t.Run("duplicate key keeps the last row", func(t *testing.T) {
		rows := []model.ProductRow{
			{Skey: skey(7), Manufacturer: str("first")},
			{Skey: skey(7), Manufacturer: str("second")},
			{Skey: skey(7), Manufacturer: str("third")},
		}

		lookup := BuildProductLookup(rows)

		require.Len(t, lookup, 1)
		assert.Equal(t, "third", *lookup[7].Manufacturer)
	})

	t.Run("rows with missing fields are stored as-is", func(t *testing.T) {
		rows := []model.ProductRow{{Skey: skey(3)}}

		lookup := BuildProductLookup(rows)

		require.Contains(t, lookup, int64(3))
		assert.Nil(t, lookup[3].Manufacturer)
	})
}

func TestBuildDealershipLookup(t *testing.T) {
	rows := []model.DealershipRow{
		{Skey: skey(10), Dealership: str("Camping World Mesa")},
		{Skey: skey(10), Dealership: str("Camping World Tucson")},
		{Skey: nil, Dealership: str("no key")},
		{Skey: skey(11), Dealership: str("Lazydays Tampa")},
	}

	lookup := BuildDealershipLookup(rows)

	require.Len(t, lookup, 2)
	assert.Equal(t, "Camping World Tucson", *lookup[10].Dealership)
	assert.Equal(t, "Lazydays Tampa", *lookup[11].Dealership)
}
