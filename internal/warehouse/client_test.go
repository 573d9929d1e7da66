package warehouse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", 2, zap.NewNop())
}

func TestExecute(t *testing.T) {
	t.Run("returns data payload and sends bearer token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Contains(t, req["query"], "dim_dealerships")

			w.Write([]byte(`{"data": {"ok": true}}`))
		})

		data, err := client.Execute(context.Background(), `{ dim_dealerships { items } }`, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok": true}`, string(data))
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		})

		_, err := client.Execute(context.Background(), "{}", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("errors array in envelope is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": null, "errors": [{"message": "field not found"}]}`))
		})

		_, err := client.Execute(context.Background(), "{}", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field not found")
	})
}

func TestFetchDealerships(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"dim_dealerships": {"items": [
			{"dim_dealership_skey": 1, "dealership": "Lazydays Tampa", "state": "Florida"},
			{"dim_dealership_skey": null, "dealership": "orphan"}
		]}}}`))
	})

	rows, err := client.FetchDealerships(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Skey)
	assert.Equal(t, int64(1), *rows[0].Skey)
	assert.Equal(t, "Lazydays Tampa", *rows[0].Dealership)
	assert.Nil(t, rows[1].Skey)
}

func TestFetchInventory(t *testing.T) {
	t.Run("paginates with a price cursor until a short page", func(t *testing.T) {
		var queries []string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			query := req["query"].(string)
			queries = append(queries, query)

			if strings.Contains(query, "lt:") {
				// second page, short: pagination ends here
				w.Write([]byte(`{"data": {"fact_inventory_currents": {"items": [
					{"stock_number": "S3", "price": "100"}
				]}}}`))
				return
			}
			w.Write([]byte(`{"data": {"fact_inventory_currents": {"items": [
				{"stock_number": "S1", "price": "900"},
				{"stock_number": "S2", "price": "500"}
			]}}}`))
		})

		facts, err := client.FetchInventory(context.Background())
		require.NoError(t, err)
		require.Len(t, facts, 3)
		assert.Equal(t, "S1", *facts[0].StockNumber)
		assert.Equal(t, "S3", *facts[2].StockNumber)

		require.Len(t, queries, 2)
		assert.Contains(t, queries[1], "price: { lt: 500 }")
	})

	t.Run("stops when no price can anchor the cursor", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"data": {"fact_inventory_currents": {"items": [
				{"stock_number": "S1", "price": null},
				{"stock_number": "S2", "price": "bogus"}
			]}}}`))
		})

		facts, err := client.FetchInventory(context.Background())
		require.NoError(t, err)
		assert.Len(t, facts, 2)
		assert.Equal(t, 1, calls)
	})
}
