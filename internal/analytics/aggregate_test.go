package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvintel-service/internal/model"
)

func unit(maker, condition, state string, price float64, days int) model.EnrichedUnit {
	return model.EnrichedUnit{
		Manufacturer: maker,
		Condition:    condition,
		State:        state,
		RVType:       "TRAVEL TRAILER",
		DealerGroup:  "General RV",
		Region:       "Southeast",
		City:         "Tampa",
		Price:        price,
		DaysOnLot:    days,
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty input yields zeroed summary", func(t *testing.T) {
		summary := Aggregate(nil)

		assert.Zero(t, summary.TotalUnits)
		assert.Zero(t, summary.TotalValue)
		assert.Zero(t, summary.AvgPrice)
		assert.Empty(t, summary.ByMaker)
		assert.Empty(t, summary.ByCondition)
	})

	t.Run("totals and price statistics", func(t *testing.T) {
		units := []model.EnrichedUnit{
			unit("JAYCO", "NEW", "Florida", 40000, 30),
			unit("JAYCO", "USED", "Florida", 20000, 90),
			unit("FOREST RIVER", "NEW", "Texas", 0, 0), // unpriced, counted but excluded from stats
		}

		summary := Aggregate(units)

		assert.Equal(t, 3, summary.TotalUnits)
		assert.Equal(t, 60000.0, summary.TotalValue)
		assert.Equal(t, 30000.0, summary.AvgPrice)
		assert.Equal(t, 20000.0, summary.MinPrice)
		assert.Equal(t, 40000.0, summary.MaxPrice)
	})

	t.Run("groups sorted by count descending", func(t *testing.T) {
		units := []model.EnrichedUnit{
			unit("JAYCO", "NEW", "Florida", 100, 1),
			unit("JAYCO", "NEW", "Florida", 200, 2),
			unit("FOREST RIVER", "USED", "Texas", 300, 3),
		}

		summary := Aggregate(units)

		require.Len(t, summary.ByMaker, 2)
		assert.Equal(t, "JAYCO", summary.ByMaker[0].Name)
		assert.Equal(t, 2, summary.ByMaker[0].Count)
		assert.Equal(t, "FOREST RIVER", summary.ByMaker[1].Name)
	})

	t.Run("ties break by name for deterministic output", func(t *testing.T) {
		units := []model.EnrichedUnit{
			unit("ZINGER", "NEW", "Ohio", 100, 1),
			unit("AIRSTREAM", "NEW", "Ohio", 100, 1),
		}

		summary := Aggregate(units)

		require.Len(t, summary.ByMaker, 2)
		assert.Equal(t, "AIRSTREAM", summary.ByMaker[0].Name)
		assert.Equal(t, "ZINGER", summary.ByMaker[1].Name)
	})

	t.Run("empty dimension values excluded from breakdowns", func(t *testing.T) {
		units := []model.EnrichedUnit{
			unit("JAYCO", "NEW", "", 100, 1),
			unit("JAYCO", "NEW", "Florida", 100, 1),
		}

		summary := Aggregate(units)

		require.Len(t, summary.ByState, 1)
		assert.Equal(t, "Florida", summary.ByState[0].Name)
		assert.Equal(t, 1, summary.ByState[0].Count)
	})

	t.Run("group price and days statistics", func(t *testing.T) {
		units := []model.EnrichedUnit{
			unit("JAYCO", "NEW", "Florida", 10000, 10),
			unit("JAYCO", "NEW", "Florida", 30000, 30),
			unit("JAYCO", "NEW", "Florida", 0, 0),
		}

		summary := Aggregate(units)

		require.Len(t, summary.ByMaker, 1)
		group := summary.ByMaker[0]
		assert.Equal(t, 3, group.Count)
		assert.Equal(t, 40000.0, group.TotalValue)
		assert.Equal(t, 20000.0, group.AvgPrice)
		assert.Equal(t, 10000.0, group.MinPrice)
		assert.Equal(t, 30000.0, group.MaxPrice)
		require.NotNil(t, group.AvgDaysOnLot)
		assert.Equal(t, 20.0, *group.AvgDaysOnLot)
	})

	t.Run("manufacturer breakdown capped at limit", func(t *testing.T) {
		var units []model.EnrichedUnit
		makers := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
		for i, m := range makers {
			for j := 0; j <= i; j++ {
				units = append(units, unit(m, "NEW", "Florida", 100, 1))
			}
		}

		summary := Aggregate(units)

		require.Len(t, summary.ByMaker, limitMaker)
		assert.Equal(t, "L", summary.ByMaker[0].Name)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Zero(t, summary.TotalUnits)
		assert.Zero(t, summary.UniqueMakes)
		assert.Zero(t, summary.AvgPrice)
		assert.Empty(t, summary.ByClass)
	})

	t.Run("distinct counts and breakdown maps", func(t *testing.T) {
		units := []model.EnrichedUnit{
			{Manufacturer: "JAYCO", Model: "Jay Flight", Dealership: "D1", RVType: "TRAVEL TRAILER", Condition: "NEW", Price: 100},
			{Manufacturer: "JAYCO", Model: "Eagle", Dealership: "D1", RVType: "FIFTH WHEEL", Condition: "USED", Price: 300},
			{Manufacturer: "FOREST RIVER", Model: "Eagle", Dealership: "D2", RVType: "TRAVEL TRAILER", Condition: "NEW", Price: 0},
		}

		summary := Summarize(units)

		assert.Equal(t, 3, summary.TotalUnits)
		assert.Equal(t, 2, summary.UniqueMakes)
		assert.Equal(t, 2, summary.UniqueModels)
		assert.Equal(t, 2, summary.DealersWithData)
		assert.Equal(t, 200.0, summary.AvgPrice)
		assert.Equal(t, 100.0, summary.MinPrice)
		assert.Equal(t, 300.0, summary.MaxPrice)
		assert.Equal(t, 2, summary.ByClass["TRAVEL TRAILER"])
		assert.Equal(t, 1, summary.ByClass["FIFTH WHEEL"])
		assert.Equal(t, 2, summary.ByCondition["NEW"])
	})
}
