package escrow_test

import (
	"testing"

	"marketplace/internal/core/domain/model/escrow"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents, "USD")
	require.NoError(t, err)
	return m
}

func newFrozenEscrow(t *testing.T) *escrow.Escrow {
	t.Helper()
	e, err := escrow.NewEscrow(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 199998))
	require.NoError(t, err)
	return e
}

func TestNewEscrow(t *testing.T) {
	t.Run("freezes positive amount", func(t *testing.T) {
		orderID := kernel.NewUUID()
		e, err := escrow.NewEscrow(kernel.NewUUID(), orderID, mustMoney(t, 199998))

		require.NoError(t, err)
		assert.Equal(t, escrow.Frozen, e.Status())
		assert.Equal(t, int64(199998), e.Amount().AmountCents())
		assert.True(t, orderID.IsEqual(e.OrderID()))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := escrow.NewEscrow(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 0))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed amount", func(t *testing.T) {
		var amount kernel.Money
		_, err := escrow.NewEscrow(kernel.NewUUID(), kernel.NewUUID(), amount)

		require.Error(t, err)
	})

	t.Run("rejects zero-value order id", func(t *testing.T) {
		var orderID kernel.UUID
		_, err := escrow.NewEscrow(kernel.NewUUID(), orderID, mustMoney(t, 100))

		require.Error(t, err)
	})
}

func TestEscrow_Release(t *testing.T) {
	t.Run("releases frozen escrow", func(t *testing.T) {
		e := newFrozenEscrow(t)

		require.NoError(t, e.Release())
		assert.Equal(t, escrow.Released, e.Status())
	})

	t.Run("release is terminal", func(t *testing.T) {
		e := newFrozenEscrow(t)
		require.NoError(t, e.Release())

		err := e.Release()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, escrow.Released, e.Status())
	})

	t.Run("cannot release refunded escrow", func(t *testing.T) {
		e := newFrozenEscrow(t)
		require.NoError(t, e.Refund())

		err := e.Release()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, escrow.Refunded, e.Status())
	})
}

func TestEscrow_Refund(t *testing.T) {
	t.Run("refunds frozen escrow", func(t *testing.T) {
		e := newFrozenEscrow(t)

		require.NoError(t, e.Refund())
		assert.Equal(t, escrow.Refunded, e.Status())
	})

	t.Run("refund is terminal", func(t *testing.T) {
		e := newFrozenEscrow(t)
		require.NoError(t, e.Refund())

		err := e.Refund()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cannot refund released escrow", func(t *testing.T) {
		e := newFrozenEscrow(t)
		require.NoError(t, e.Release())

		err := e.Refund()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, escrow.Released, e.Status())
	})
}

func TestEscrowStatus(t *testing.T) {
	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "frozen", escrow.Frozen.String())
		assert.Equal(t, "released", escrow.Released.String())
		assert.Equal(t, "refunded", escrow.Refunded.String())
		assert.Equal(t, "unknown", escrow.Unknown.String())
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, escrow.Frozen.IsTerminal())
		assert.True(t, escrow.Released.IsTerminal())
		assert.True(t, escrow.Refunded.IsTerminal())
	})

	t.Run("validate rejects unknown", func(t *testing.T) {
		require.Error(t, escrow.Unknown.Validate())
		require.Error(t, escrow.Status(42).Validate())
		require.NoError(t, escrow.Frozen.Validate())
	})

	t.Run("parses wire names", func(t *testing.T) {
		status, err := escrow.StatusFromString("refunded")
		require.NoError(t, err)
		assert.Equal(t, escrow.Refunded, status)

		_, err = escrow.StatusFromString("melted")
		require.Error(t, err)
	})
}

func TestRestoreEscrow(t *testing.T) {
	t.Run("rehydrates released escrow", func(t *testing.T) {
		id := kernel.NewUUID()

		e, err := escrow.RestoreEscrow(id, kernel.NewUUID(), mustMoney(t, 500), escrow.Released)

		require.NoError(t, err)
		assert.Equal(t, escrow.Released, e.Status())
		assert.True(t, id.IsEqual(e.ID()))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := escrow.RestoreEscrow(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 500), escrow.Unknown)

		require.Error(t, err)
	})
}

func TestEscrow_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var e escrow.Escrow

		err := e.Validate()

		require.Error(t, err)
		assert.Equal(t, escrow.ErrEscrowIsNotConstructed, err)
	})
}
