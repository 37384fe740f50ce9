package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limra/internal/core/id"
	"limra/internal/core/types"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
)

func newProduct(sellingPrice string, tax float64) product.Product {
	return product.Product{
		ID:           id.New(),
		Name:         "Cement Bag",
		Category:     product.CategoryConstruction,
		SellingPrice: types.MustMoney(sellingPrice),
		Tax:          types.NewPercent(tax),
		Unit:         product.UnitPcs,
	}
}

func TestComputeLine(t *testing.T) {
	// Selling price 400, tax 18%, quantity 10, discount 5%.
	p := newProduct("400", 18)
	item := invoice.Item{
		ProductID: p.ID,
		Quantity:  types.NewQuantityFromInt64(10),
		Discount:  types.NewPercent(5),
	}

	line := ComputeLine(item, p)

	assert.True(t, line.Gross.Equal(types.MustMoney("4000")), "gross: %s", line.Gross)
	assert.True(t, line.DiscountAmount.Equal(types.MustMoney("200")), "discount: %s", line.DiscountAmount)
	assert.True(t, line.TaxAmount.Equal(types.MustMoney("684")), "tax: %s", line.TaxAmount)
	assert.True(t, line.Total.Equal(types.MustMoney("4484")), "total: %s", line.Total)
}

func TestComputeLine_DiscountBounds(t *testing.T) {
	p := newProduct("250", 12)
	item := invoice.Item{
		ProductID: p.ID,
		Quantity:  types.NewQuantityFromInt64(4),
	}

	t.Run("zero discount", func(t *testing.T) {
		item.Discount = types.NewPercent(0)
		line := ComputeLine(item, p)

		assert.True(t, line.DiscountAmount.IsZero())
		// Taxable amount equals gross, so tax applies to the full line.
		assert.True(t, line.TaxAmount.Equal(line.Gross.Mul(types.NewPercent(12)).Div(types.NewPercent(100))))
	})

	t.Run("full discount", func(t *testing.T) {
		item.Discount = types.NewPercent(100)
		line := ComputeLine(item, p)

		assert.True(t, line.DiscountAmount.Equal(line.Gross))
		assert.True(t, line.TaxAmount.IsZero())
		assert.True(t, line.Total.IsZero())
	})
}

func TestComputeLine_FractionalQuantity(t *testing.T) {
	p := newProduct("65", 18)
	item := invoice.Item{
		ProductID: p.ID,
		Quantity:  types.NewQuantityFromFloat64(2.5),
		Discount:  types.NewPercent(0),
	}

	line := ComputeLine(item, p)
	assert.True(t, line.Gross.Equal(types.MustMoney("162.5")), "gross: %s", line.Gross)
}

func TestComputeInvoice_Empty(t *testing.T) {
	b := ComputeInvoice(nil, product.Catalog{})

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.TotalDiscount.IsZero())
	assert.True(t, b.TotalTax.IsZero())
	assert.True(t, b.GrandTotal.IsZero())
}

func TestComputeInvoice_MissingProductExcluded(t *testing.T) {
	p := newProduct("400", 18)
	catalog := product.Catalog{p.ID: p}

	items := []invoice.Item{
		{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(2), Discount: types.NewPercent(0)},
		// Dangling reference contributes nothing to any sum.
		{ProductID: id.New(), Quantity: types.NewQuantityFromInt64(100), Discount: types.NewPercent(0)},
	}

	withDangling := ComputeInvoice(items, catalog)
	clean := ComputeInvoice(items[:1], catalog)

	assert.True(t, withDangling.Subtotal.Equal(clean.Subtotal))
	assert.True(t, withDangling.TotalDiscount.Equal(clean.TotalDiscount))
	assert.True(t, withDangling.TotalTax.Equal(clean.TotalTax))
	assert.True(t, withDangling.GrandTotal.Equal(clean.GrandTotal))
}

func TestComputeInvoice_Additivity(t *testing.T) {
	cement := newProduct("400", 18)
	paint := newProduct("250", 12)
	bricks := newProduct("10", 5)
	catalog := product.Catalog{cement.ID: cement, paint.ID: paint, bricks.ID: bricks}

	items := []invoice.Item{
		{ProductID: cement.ID, Quantity: types.NewQuantityFromInt64(10), Discount: types.NewPercent(5)},
		{ProductID: paint.ID, Quantity: types.NewQuantityFromInt64(3), Discount: types.NewPercent(10)},
		{ProductID: bricks.ID, Quantity: types.NewQuantityFromInt64(500), Discount: types.NewPercent(0)},
	}

	b := ComputeInvoice(items, catalog)

	lineSum := types.Zero()
	for _, item := range items {
		p, ok := catalog[item.ProductID]
		require.True(t, ok)
		lineSum = lineSum.Add(ComputeLine(item, p).Total)
	}

	// Grand total equals the sum of line totals and equals
	// subtotal - discount + tax.
	assert.True(t, b.GrandTotal.Equal(lineSum), "grand total %s, line sum %s", b.GrandTotal, lineSum)
	assert.True(t, b.GrandTotal.Equal(b.Subtotal.Sub(b.TotalDiscount).Add(b.TotalTax)))
}
