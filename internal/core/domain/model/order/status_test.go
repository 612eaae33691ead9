package order_test

import (
	"testing"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Confirmed, "Confirmed"},
		{order.Shipped, "Shipped"},
		{order.Cancelled, "Cancelled"},
		{order.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Cancelled} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unrecognized values", func(t *testing.T) {
		for _, raw := range []string{"", "pending", "Unknown", "Delivered"} {
			_, err := order.StatusFromString(raw)
			require.Error(t, err, raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("Pending confirms", func(t *testing.T) {
		next, err := order.Pending.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("Confirmed re-confirms idempotently", func(t *testing.T) {
		next, err := order.Confirmed.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("terminal statuses cannot confirm", func(t *testing.T) {
		for _, s := range []order.Status{order.Shipped, order.Cancelled, order.Unknown} {
			_, err := s.Confirm()
			require.Error(t, err, s.String())
			require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
		}
	})
}

func TestStatus_Ship(t *testing.T) {
	t.Run("Confirmed ships", func(t *testing.T) {
		next, err := order.Confirmed.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
	})

	t.Run("Shipped re-ships idempotently", func(t *testing.T) {
		next, err := order.Shipped.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
	})

	t.Run("Pending cannot ship", func(t *testing.T) {
		_, err := order.Pending.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	})

	t.Run("Cancelled cannot ship", func(t *testing.T) {
		_, err := order.Cancelled.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("Pending cancels", func(t *testing.T) {
		next, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("Confirmed cancels", func(t *testing.T) {
		next, err := order.Confirmed.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("Cancelled re-cancels idempotently", func(t *testing.T) {
		next, err := order.Cancelled.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("Shipped cannot cancel", func(t *testing.T) {
		_, err := order.Shipped.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.True(t, order.Shipped.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}
