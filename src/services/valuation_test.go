package services_test

import (
	"testing"

	"networth/src/models"
	"networth/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	calculator := services.NewValuationCalculator()

	t.Run("converts cost and value into the base currency", func(t *testing.T) {
		valued := calculator.Value([]models.AggregatedHolding{{
			CanonicalID:       "AAPL",
			TotalQuantity:     10,
			TotalCostOriginal: 1500,
			CurrentPrice:      180,
			FxRate:            1.1,
		}})
		require.Len(t, valued, 1)
		h := valued[0]
		assert.InDelta(t, 1650.0, h.CostBase, 1e-9)
		assert.InDelta(t, 1980.0, h.ValueBase, 1e-9)
		assert.InDelta(t, 0.2, h.PLRatio, 1e-9)
	})

	t.Run("missing quote shows as total loss", func(t *testing.T) {
		valued := calculator.Value([]models.AggregatedHolding{{
			CanonicalID:       "DELISTED",
			TotalQuantity:     100,
			TotalCostOriginal: 500,
			CurrentPrice:      0,
			FxRate:            1.0,
		}})
		assert.Equal(t, 0.0, valued[0].ValueBase)
		assert.InDelta(t, -1.0, valued[0].PLRatio, 1e-9)
	})

	t.Run("zero cost basis reports zero ratio", func(t *testing.T) {
		valued := calculator.Value([]models.AggregatedHolding{{
			CanonicalID:       "GIFTED",
			TotalQuantity:     10,
			TotalCostOriginal: 0,
			CurrentPrice:      50,
			FxRate:            1.0,
		}})
		assert.Equal(t, 500.0, valued[0].ValueBase)
		assert.Equal(t, 0.0, valued[0].PLRatio)
	})
}
