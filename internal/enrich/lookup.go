// Package enrich joins inventory fact rows to the dealership and product
// dimension tables. The warehouse does not perform server-side joins, so the
// fact table carries surrogate keys that are resolved here against lookup
// maps built once per dimension fetch.
package enrich

import "rvintel-service/internal/model"

// ProductLookup maps a product surrogate key to its dimension row.
type ProductLookup map[int64]model.ProductRow

// DealershipLookup maps a dealership surrogate key to its dimension row.
type DealershipLookup map[int64]model.DealershipRow

// BuildProductLookup indexes product dimension rows by surrogate key. Rows
// with a null key are skipped. If two rows share a key the later row wins;
// source order is not guaranteed stable across warehouse refetches, so
// duplicate keys should not occur in well-formed dimension data.
func BuildProductLookup(rows []model.ProductRow) ProductLookup {
	lookup := make(ProductLookup, len(rows))
	for _, row := range rows {
		if row.Skey == nil {
			continue
		}
		lookup[*row.Skey] = row
	}
	return lookup
}

// BuildDealershipLookup indexes dealership dimension rows by surrogate key,
// with the same null-skip and last-row-wins behavior as BuildProductLookup.
func BuildDealershipLookup(rows []model.DealershipRow) DealershipLookup {
	lookup := make(DealershipLookup, len(rows))
	for _, row := range rows {
		if row.Skey == nil {
			continue
		}
		lookup[*row.Skey] = row
	}
	return lookup
}
