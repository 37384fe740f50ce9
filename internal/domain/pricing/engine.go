// Package pricing computes monetary breakdowns for invoice lines.
//
// It is the single computation path for invoice totals: the billing
// preview, the invoice detail view and report generation must all go
// through this package so they can never diverge.
//
// All functions are pure: no I/O, no mutation, safe to call
// repeatedly and concurrently. No rounding is applied internally;
// rounding to currency precision happens only at presentation time,
// never in accumulation.
package pricing

import (
	"github.com/shopspring/decimal"

	"limra/internal/core/types"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
)

var hundred = decimal.NewFromInt(100)

// LineBreakdown is the monetary breakdown of a single invoice line.
type LineBreakdown struct {
	// Gross is selling price times quantity, before discount
	Gross types.Money `json:"lineGross"`

	// DiscountAmount is the line discount applied to Gross
	DiscountAmount types.Money `json:"lineDiscountAmount"`

	// TaxAmount is tax on the discounted (taxable) amount
	TaxAmount types.Money `json:"lineTaxAmount"`

	// Total is taxable amount plus tax
	Total types.Money `json:"lineTotal"`
}

// Breakdown is the monetary breakdown of a whole invoice.
type Breakdown struct {
	Subtotal      types.Money `json:"subtotal"`
	TotalDiscount types.Money `json:"totalDiscount"`
	TotalTax      types.Money `json:"totalTax"`
	GrandTotal    types.Money `json:"grandTotal"`
}

// ComputeLine computes the breakdown for one item against its
// resolved product. The caller must resolve the product; items whose
// product cannot be found are skipped by ComputeInvoice.
//
// Inputs are not validated here: quantity sign and discount range are
// the submitting form's responsibility, the engine computes whatever
// arithmetic the inputs imply.
func ComputeLine(item invoice.Item, p product.Product) LineBreakdown {
	gross := p.SellingPrice.Mul(item.Quantity.Decimal())
	discountAmount := gross.Mul(item.Discount).Div(hundred)
	taxable := gross.Sub(discountAmount)
	taxAmount := taxable.Mul(p.Tax).Div(hundred)

	return LineBreakdown{
		Gross:          gross,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          taxable.Add(taxAmount),
	}
}

// ComputeInvoice aggregates ComputeLine over all resolvable items.
// Items referencing a product missing from the catalog contribute
// nothing to any sum (best-effort aggregation, not an error).
// An empty item list yields all-zero fields.
func ComputeInvoice(items []invoice.Item, catalog product.Catalog) Breakdown {
	b := Breakdown{
		Subtotal:      types.Zero(),
		TotalDiscount: types.Zero(),
		TotalTax:      types.Zero(),
		GrandTotal:    types.Zero(),
	}

	for _, item := range items {
		p, ok := catalog[item.ProductID]
		if !ok {
			continue
		}

		line := ComputeLine(item, p)
		b.Subtotal = b.Subtotal.Add(line.Gross)
		b.TotalDiscount = b.TotalDiscount.Add(line.DiscountAmount)
		b.TotalTax = b.TotalTax.Add(line.TaxAmount)
		b.GrandTotal = b.GrandTotal.Add(line.Total)
	}

	return b
}
