package order_test

import (
	"testing"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("computes total at construction", func(t *testing.T) {
		item, err := order.NewItem("rice", decimal.NewFromInt(2), decimal.NewFromInt(50))
		require.NoError(t, err)

		assert.Equal(t, "rice", item.Name())
		assert.True(t, item.Total().Equal(decimal.NewFromInt(100)))
		assert.NoError(t, item.Validate())
	})

	t.Run("fractional quantity", func(t *testing.T) {
		item, err := order.NewItem("dal", decimal.NewFromFloat(0.5), decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, item.Total().Equal(decimal.NewFromInt(50)))
	})

	t.Run("negative unit price is rejected", func(t *testing.T) {
		_, err := order.NewItem("rice", decimal.NewFromInt(1), decimal.NewFromInt(-5))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty name and zero quantity are allowed", func(t *testing.T) {
		item, err := order.NewItem("", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, item.Total().IsZero())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
