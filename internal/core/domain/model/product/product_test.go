package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
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

func TestNewProduct(t *testing.T) {
	t.Run("creates active listing", func(t *testing.T) {
		sellerID := kernel.NewUUID()
		p, err := product.NewProduct(
			kernel.NewUUID(), sellerID, "iPhone 15 Pro", "Premium smartphone",
			mustMoney(t, 99999), 10,
		)

		require.NoError(t, err)
		assert.True(t, p.IsActive())
		assert.Equal(t, "iPhone 15 Pro", p.Title())
		assert.Equal(t, int64(99999), p.Price().AmountCents())
		assert.Equal(t, 10, p.Stock())
		assert.True(t, p.IsSoldBy(sellerID))
		assert.False(t, p.IsSoldBy(kernel.NewUUID()))
	})

	t.Run("allows empty description", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "Widget", "", mustMoney(t, 100), 1)

		require.NoError(t, err)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "", "", mustMoney(t, 100), 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "Widget", "", mustMoney(t, 100), -1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_Deactivate(t *testing.T) {
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), "Widget", "", mustMoney(t, 100), 1)
	require.NoError(t, err)

	p.Deactivate()

	assert.False(t, p.IsActive())
}

func TestRestoreProduct(t *testing.T) {
	t.Run("rehydrates inactive listing", func(t *testing.T) {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), kernel.NewUUID(), "Widget", "desc", mustMoney(t, 100), 0, false)

		require.NoError(t, err)
		assert.False(t, p.IsActive())
		assert.Equal(t, 0, p.Stock())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
