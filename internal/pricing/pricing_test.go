package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/internal/pricing"
)

func TestComputeTotals_SingleItem(t *testing.T) {
	items := []pricing.LineItem{
		{ItemType: domain.ItemTypeService, ItemID: 1, Quantity: 1, UnitPrice: 500_000},
	}

	totals, err := pricing.ComputeTotals(items, pricing.NoDiscount(), pricing.DefaultTaxPolicy())
	require.NoError(t, err)

	require.Equal(t, int64(500_000), totals.Subtotal)
	require.Equal(t, int64(0), totals.DiscountTotal)
	require.Equal(t, int64(500_000), totals.TaxableAmount)
	require.Equal(t, int64(40_000), totals.TaxAmount)
	require.Equal(t, int64(540_000), totals.GrandTotal)
}

func TestComputeTotals_ItemAndOrderDiscounts(t *testing.T) {
	// Two massages at 300k each with a 50k line discount, plus a 100k
	// order-level discount: subtotal 550k, taxable 450k, 8% tax 36k.
	items := []pricing.LineItem{
		{ItemType: domain.ItemTypeService, ItemID: 7, Quantity: 2, UnitPrice: 300_000, ItemDiscount: 50_000},
	}
	discount := pricing.OrderDiscount{Mode: pricing.DiscountModeAmount, Amount: 100_000}

	totals, err := pricing.ComputeTotals(items, discount, pricing.DefaultTaxPolicy())
	require.NoError(t, err)

	require.Equal(t, int64(550_000), totals.Subtotal)
	require.Equal(t, int64(100_000), totals.DiscountTotal)
	require.Equal(t, int64(450_000), totals.TaxableAmount)
	require.Equal(t, int64(36_000), totals.TaxAmount)
	require.Equal(t, int64(486_000), totals.GrandTotal)
}

func TestComputeTotals_OrderDiscountClampedToSubtotal(t *testing.T) {
	items := []pricing.LineItem{
		{ItemID: 1, Quantity: 1, UnitPrice: 100_000},
	}
	discount := pricing.OrderDiscount{Mode: pricing.DiscountModeAmount, Amount: 150_000}

	totals, err := pricing.ComputeTotals(items, discount, pricing.DefaultTaxPolicy())
	require.NoError(t, err)

	require.Equal(t, int64(100_000), totals.Subtotal)
	require.Equal(t, int64(100_000), totals.DiscountTotal)
	require.Equal(t, int64(0), totals.TaxableAmount)
	require.Equal(t, int64(0), totals.TaxAmount)
	require.Equal(t, int64(0), totals.GrandTotal)
}

func TestComputeTotals_ItemDiscountClampedToGross(t *testing.T) {
	items := []pricing.LineItem{
		{ItemID: 1, Quantity: 2, UnitPrice: 40_000, ItemDiscount: 100_000},
		{ItemID: 2, Quantity: 1, UnitPrice: 200_000},
	}

	totals, err := pricing.ComputeTotals(items, pricing.NoDiscount(), pricing.DefaultTaxPolicy())
	require.NoError(t, err)

	// First line clamps to zero instead of going negative.
	require.Equal(t, int64(200_000), totals.Subtotal)
	require.Equal(t, int64(216_000), totals.GrandTotal)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totals, err := pricing.ComputeTotals(nil, pricing.NoDiscount(), pricing.DefaultTaxPolicy())
	require.NoError(t, err)
	require.Equal(t, pricing.Totals{}, totals)
}

func TestComputeTotals_TaxRoundsHalfUp(t *testing.T) {
	// 31 * 8% = 2.48 rounds down, 32 * 8% = 2.56 rounds up.
	cases := []struct {
		amount int64
		tax    int64
	}{
		{31, 2},
		{32, 3},
		{100, 8},
		{1, 0},
		{7, 1}, // 0.56 rounds to 1
	}

	for _, tc := range cases {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: tc.amount}}
		totals, err := pricing.ComputeTotals(items, pricing.NoDiscount(), pricing.DefaultTaxPolicy())
		require.NoError(t, err)
		require.Equal(t, tc.tax, totals.TaxAmount, "amount %d", tc.amount)
	}
}

func TestComputeTotals_ZeroRate(t *testing.T) {
	items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: 500_000}}

	totals, err := pricing.ComputeTotals(items, pricing.NoDiscount(), pricing.TaxPolicy{RateBps: 0})
	require.NoError(t, err)
	require.Equal(t, int64(0), totals.TaxAmount)
	require.Equal(t, int64(500_000), totals.GrandTotal)
}

func TestComputeTotals_PercentDiscount(t *testing.T) {
	items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: 200_000}}
	discount := pricing.OrderDiscount{Mode: pricing.DiscountModePercent, Percent: 25}

	totals, err := pricing.ComputeTotals(items, discount, pricing.DefaultTaxPolicy())
	require.NoError(t, err)

	require.Equal(t, int64(50_000), totals.DiscountTotal)
	require.Equal(t, int64(150_000), totals.TaxableAmount)
	require.Equal(t, int64(12_000), totals.TaxAmount)
	require.Equal(t, int64(162_000), totals.GrandTotal)
}

func TestComputeTotals_InvalidInput(t *testing.T) {
	policy := pricing.DefaultTaxPolicy()

	t.Run("zero quantity", func(t *testing.T) {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 0, UnitPrice: 100}}
		_, err := pricing.ComputeTotals(items, pricing.NoDiscount(), policy)
		require.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})

	t.Run("negative unit price", func(t *testing.T) {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: -1}}
		_, err := pricing.ComputeTotals(items, pricing.NoDiscount(), policy)
		require.ErrorIs(t, err, pricing.ErrInvalidUnitPrice)
	})

	t.Run("negative item discount", func(t *testing.T) {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: 100, ItemDiscount: -1}}
		_, err := pricing.ComputeTotals(items, pricing.NoDiscount(), policy)
		require.ErrorIs(t, err, pricing.ErrInvalidItemDiscount)
	})

	t.Run("negative order discount", func(t *testing.T) {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: 100}}
		discount := pricing.OrderDiscount{Mode: pricing.DiscountModeAmount, Amount: -1}
		_, err := pricing.ComputeTotals(items, discount, policy)
		require.ErrorIs(t, err, pricing.ErrInvalidDiscountAmount)
	})

	t.Run("percent out of range", func(t *testing.T) {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: 100}}
		discount := pricing.OrderDiscount{Mode: pricing.DiscountModePercent, Percent: 101}
		_, err := pricing.ComputeTotals(items, discount, policy)
		require.ErrorIs(t, err, pricing.ErrInvalidDiscountPercent)
	})

	t.Run("unknown mode", func(t *testing.T) {
		items := []pricing.LineItem{{ItemID: 1, Quantity: 1, UnitPrice: 100}}
		discount := pricing.OrderDiscount{Mode: "coupon"}
		_, err := pricing.ComputeTotals(items, discount, policy)
		require.ErrorIs(t, err, pricing.ErrInvalidDiscountMode)
	})

	t.Run("negative tax rate", func(t *testing.T) {
		_, err := pricing.ComputeTotals(nil, pricing.NoDiscount(), pricing.TaxPolicy{RateBps: -1})
		require.ErrorIs(t, err, pricing.ErrInvalidTaxRate)
	})
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := []pricing.LineItem{
		{ItemID: 1, Quantity: 3, UnitPrice: 119_999, ItemDiscount: 7_500},
		{ItemID: 2, Quantity: 1, UnitPrice: 85_000},
	}
	discount := pricing.OrderDiscount{Mode: pricing.DiscountModeAmount, Amount: 20_000}

	first, err := pricing.ComputeTotals(items, discount, pricing.DefaultTaxPolicy())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := pricing.ComputeTotals(items, discount, pricing.DefaultTaxPolicy())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestComputeTotals_MoreDiscountNeverRaisesTotal(t *testing.T) {
	base := []pricing.LineItem{
		{ItemID: 1, Quantity: 2, UnitPrice: 120_000},
		{ItemID: 2, Quantity: 1, UnitPrice: 75_000},
	}

	prev := int64(-1)
	for amount := int64(0); amount <= 400_000; amount += 10_000 {
		discount := pricing.OrderDiscount{Mode: pricing.DiscountModeAmount, Amount: amount}
		totals, err := pricing.ComputeTotals(base, discount, pricing.DefaultTaxPolicy())
		require.NoError(t, err)
		if prev >= 0 {
			require.LessOrEqual(t, totals.GrandTotal, prev, "discount %d", amount)
		}
		prev = totals.GrandTotal
	}
}

func TestComputeTotals_GrandTotalNeverNegative(t *testing.T) {
	// A maximal discount on every level still ends at exactly zero.
	items := []pricing.LineItem{
		{ItemID: 1, Quantity: 1, UnitPrice: 10_000, ItemDiscount: 999_999},
		{ItemID: 2, Quantity: 2, UnitPrice: 5_000},
	}
	discount := pricing.OrderDiscount{Mode: pricing.DiscountModeAmount, Amount: 999_999}

	totals, err := pricing.ComputeTotals(items, discount, pricing.DefaultTaxPolicy())
	require.NoError(t, err)
	require.GreaterOrEqual(t, totals.GrandTotal, int64(0))
	require.Equal(t, int64(0), totals.GrandTotal)
}
