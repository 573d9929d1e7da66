package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"rvintel-service/internal/model"
)

const dealershipsQuery = `
{
    dim_dealerships(first: 10000) {
        items {
            dim_dealership_skey
            dealer_id
            dealer_group
            dealership
            city
            state
            postal_code
            county
            region
            country
            dealer_logo
        }
    }
}
`

const productsQuery = `
{
    dim_product_models(first: 100000) {
        items {
            dim_product_model_skey
            product_id
            parent_company
            division
            company
            manufacturer
            model_year
            model
            floorplan
            rv_type
            rv_subtype
            manufacturer_model
            manufacturer_logo
        }
    }
}
`

const inventoryFields = `
            stock_number
            dim_product_model_skey
            dim_dealership_skey
            price
            days_on_lot
            condition
            overpriced_unit
            percent_over_median
            first_seen_date`

// FetchDealerships loads the full dealership dimension table.
func (c *Client) FetchDealerships(ctx context.Context) ([]model.DealershipRow, error) {
	data, err := c.Execute(ctx, dealershipsQuery, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		DimDealerships struct {
			Items []model.DealershipRow `json:"items"`
		} `json:"dim_dealerships"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode dim_dealerships: %w", err)
	}
	c.Logger.Info("Fetched dealership dimension",
		zap.Int("rows", len(payload.DimDealerships.Items)))
	return payload.DimDealerships.Items, nil
}

// FetchProducts loads the full product-model dimension table.
func (c *Client) FetchProducts(ctx context.Context) ([]model.ProductRow, error) {
	data, err := c.Execute(ctx, productsQuery, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		DimProductModels struct {
			Items []model.ProductRow `json:"items"`
		} `json:"dim_product_models"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode dim_product_models: %w", err)
	}
	c.Logger.Info("Fetched product dimension",
		zap.Int("rows", len(payload.DimProductModels.Items)))
	return payload.DimProductModels.Items, nil
}

// FetchInventory loads the current-inventory fact table in price-descending
// pages. The upstream has no offset pagination, so after the first page each
// subsequent page filters on price strictly below the cheapest unit seen so
// far. Pagination stops on a short page or when no parseable price remains
// to anchor the next cursor.
func (c *Client) FetchInventory(ctx context.Context) ([]model.InventoryFact, error) {
	var all []model.InventoryFact
	filter := ""
	for {
		query := fmt.Sprintf(`
{
    fact_inventory_currents(first: %d, orderBy: { price: DESC }%s) {
        items {%s
        }
    }
}
`, c.PageSize, filter, inventoryFields)

		data, err := c.Execute(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		var payload struct {
			FactInventoryCurrents struct {
				Items []model.InventoryFact `json:"items"`
			} `json:"fact_inventory_currents"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode fact_inventory_currents: %w", err)
		}

		page := payload.FactInventoryCurrents.Items
		all = append(all, page...)
		c.Logger.Info("Fetched inventory page",
			zap.Int("page_rows", len(page)),
			zap.Int("total_rows", len(all)))

		if len(page) < c.PageSize {
			break
		}
		cursor, ok := minPrice(page)
		if !ok {
			break
		}
		filter = fmt.Sprintf(`, filter: { price: { lt: %s } }`, strconv.FormatFloat(cursor, 'f', -1, 64))
	}
	return all, nil
}

// minPrice returns the lowest parseable price in the page.
func minPrice(page []model.InventoryFact) (float64, bool) {
	lowest := 0.0
	found := false
	for _, fact := range page {
		if fact.Price == nil {
			continue
		}
		value, err := strconv.ParseFloat(*fact.Price, 64)
		if err != nil {
			continue
		}
		if !found || value < lowest {
			lowest = value
			found = true
		}
	}
	return lowest, found
}
