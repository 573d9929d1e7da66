// Package refresh drives the snapshot lifecycle: fetch the star-schema
// tables from the warehouse, build the dimension lookups, run the enrichment
// join, publish the result to the session cache and persist it for warm
// starts.
package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rvintel-service/internal/cache"
	"rvintel-service/internal/enrich"
	"rvintel-service/internal/model"
	"rvintel-service/prometheus"
)

// Fetcher pulls the warehouse tables. Satisfied by *warehouse.Client.
type Fetcher interface {
	FetchDealerships(ctx context.Context) ([]model.DealershipRow, error)
	FetchProducts(ctx context.Context) ([]model.ProductRow, error)
	FetchInventory(ctx context.Context) ([]model.InventoryFact, error)
}

// SnapshotStore persists snapshots across restarts. Satisfied by
// *store.Store.
type SnapshotStore interface {
	ReplaceSnapshot(dealerships []model.DealershipRow, products []model.ProductRow, facts []model.InventoryFact, refreshedAt time.Time) error
	LoadSnapshot() ([]model.DealershipRow, []model.ProductRow, []model.InventoryFact, time.Time, bool, error)
}

// Refresher coordinates periodic snapshot rebuilds.
type Refresher struct {
	fetcher  Fetcher
	cache    *cache.Cache
	store    SnapshotStore // nil disables persistence
	logger   *zap.Logger
	interval time.Duration
}

// New creates a Refresher. A nil store disables warm starts and persistence.
func New(fetcher Fetcher, c *cache.Cache, store SnapshotStore, logger *zap.Logger, interval time.Duration) *Refresher {
	return &Refresher{
		fetcher:  fetcher,
		cache:    c,
		store:    store,
		logger:   logger,
		interval: interval,
	}
}

// WarmStart publishes the persisted snapshot, if any, so the API can serve
// stale-but-real data while the first warehouse refresh runs.
func (r *Refresher) WarmStart() (bool, error) {
	if r.store == nil {
		return false, nil
	}
	dealerships, products, facts, refreshedAt, ok, err := r.store.LoadSnapshot()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	snap := buildSnapshot(dealerships, products, facts, refreshedAt)
	r.cache.Set(snap)
	r.logger.Info("Warm start from persisted snapshot",
		zap.Int("units", len(snap.Units)),
		zap.Time("refreshed_at", refreshedAt))
	return true, nil
}

// Refresh performs one full fetch-join-publish cycle. The snapshot only
// swaps in after every fetch succeeded, so a mid-cycle failure leaves the
// previous snapshot serving.
func (r *Refresher) Refresh(ctx context.Context) error {
	start := time.Now()

	dealerships, err := r.fetcher.FetchDealerships(ctx)
	if err != nil {
		prometheus.RecordRefreshFailure()
		return err
	}
	products, err := r.fetcher.FetchProducts(ctx)
	if err != nil {
		prometheus.RecordRefreshFailure()
		return err
	}
	facts, err := r.fetcher.FetchInventory(ctx)
	if err != nil {
		prometheus.RecordRefreshFailure()
		return err
	}

	snap := buildSnapshot(dealerships, products, facts, start)
	r.cache.Set(snap)

	dropped := len(facts) - len(snap.Units)
	prometheus.ObserveRefresh(start, len(snap.Units), dropped)
	r.logger.Info("Snapshot refreshed",
		zap.Int("dealerships", len(dealerships)),
		zap.Int("products", len(products)),
		zap.Int("facts", len(facts)),
		zap.Int("units", len(snap.Units)),
		zap.Int("dropped", dropped),
		zap.Duration("elapsed", time.Since(start)))

	if r.store != nil {
		if err := r.store.ReplaceSnapshot(dealerships, products, facts, start); err != nil {
			// The in-memory snapshot is already live; losing persistence
			// only costs the next warm start.
			r.logger.Error("Failed to persist snapshot", zap.Error(err))
		}
	}
	return nil
}

// Run refreshes immediately and then on every interval tick until the
// context is canceled.
func (r *Refresher) Run(ctx context.Context) {
	if err := r.Refresh(ctx); err != nil {
		r.logger.Error("Initial snapshot refresh failed", zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				r.logger.Error("Snapshot refresh failed", zap.Error(err))
			}
		}
	}
}

func buildSnapshot(dealerships []model.DealershipRow, products []model.ProductRow, facts []model.InventoryFact, loadedAt time.Time) *cache.Snapshot {
	productLookup := enrich.BuildProductLookup(products)
	dealershipLookup := enrich.BuildDealershipLookup(dealerships)
	return &cache.Snapshot{
		Units:       enrich.EnrichInventory(facts, productLookup, dealershipLookup),
		Products:    productLookup,
		Dealerships: dealershipLookup,
		LoadedAt:    loadedAt,
	}
}
