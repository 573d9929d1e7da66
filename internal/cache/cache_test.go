package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvintel-service/internal/model"
)

func TestCache(t *testing.T) {
	t.Run("empty cache has no snapshot", func(t *testing.T) {
		c := New()

		snap, ok := c.Get()
		assert.False(t, ok)
		assert.Nil(t, snap)
	})

	t.Run("last published snapshot wins", func(t *testing.T) {
		c := New()
		first := &Snapshot{Units: []model.EnrichedUnit{{StockNumber: "OLD"}}, LoadedAt: time.Now().Add(-time.Hour)}
		second := &Snapshot{Units: []model.EnrichedUnit{{StockNumber: "NEW"}}, LoadedAt: time.Now()}

		c.Set(first)
		c.Set(second)

		snap, ok := c.Get()
		require.True(t, ok)
		require.Len(t, snap.Units, 1)
		assert.Equal(t, "NEW", snap.Units[0].StockNumber)
	})
}
