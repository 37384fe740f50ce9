// Package product provides the Product catalog.
// Products cover both goods and services sold on invoices.
package product

import (
	"context"

	"limra/internal/core/apperror"
	"limra/internal/core/id"
	"limra/internal/core/types"
)

// Category classifies a product.
type Category string

const (
	CategoryProduct      Category = "Product"
	CategoryService      Category = "Service"
	CategoryConstruction Category = "Construction"
)

// Unit is the unit of measure for a product.
type Unit string

const (
	UnitPcs Unit = "pcs"
	UnitBox Unit = "box"
	UnitKg  Unit = "kg"
	UnitLtr Unit = "ltr"
	UnitMtr Unit = "mtr"
	UnitSet Unit = "set"
)

// LowStockThreshold is the fixed level below which a product counts
// as running low.
const LowStockThreshold = types.Quantity(20 * types.QuantityScale)

// Product represents a catalog item (good or service).
type Product struct {
	ID id.ID `json:"id"`

	Name     string   `json:"name"`
	Category Category `json:"category"`

	// PurchasePrice is the cost basis; SellingPrice is the basis
	// for invoicing.
	PurchasePrice types.Money `json:"purchasePrice"`
	SellingPrice  types.Money `json:"sellingPrice"`

	// StockQuantity may go negative: stock deduction is not guarded
	// by an availability check in this model.
	StockQuantity types.Quantity `json:"stockQuantity"`

	// Tax is the tax rate as a percentage (0-100)
	Tax types.Percent `json:"tax"`

	Unit Unit `json:"unit"`
}

// Validate implements self-validation.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !isValidCategory(p.Category) {
		return apperror.NewValidation("invalid product category").
			WithDetail("field", "category").
			WithDetail("value", string(p.Category))
	}

	if !isValidUnit(p.Unit) {
		return apperror.NewValidation("invalid unit").
			WithDetail("field", "unit").
			WithDetail("value", string(p.Unit))
	}

	if p.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price must not be negative").
			WithDetail("field", "purchasePrice")
	}

	if p.SellingPrice.IsNegative() {
		return apperror.NewValidation("selling price must not be negative").
			WithDetail("field", "sellingPrice")
	}

	if p.Tax.IsNegative() || p.Tax.GreaterThan(types.NewPercent(100)) {
		return apperror.NewValidation("tax must be between 0 and 100").
			WithDetail("field", "tax")
	}

	return nil
}

// IsLowStock reports whether the product is below the low-stock level.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity < LowStockThreshold
}

// StockValue returns the stock valuation at cost basis.
func (p *Product) StockValue() types.Money {
	return p.PurchasePrice.Mul(p.StockQuantity.Decimal())
}

func isValidCategory(c Category) bool {
	switch c {
	case CategoryProduct, CategoryService, CategoryConstruction:
		return true
	}
	return false
}

func isValidUnit(u Unit) bool {
	switch u {
	case UnitPcs, UnitBox, UnitKg, UnitLtr, UnitMtr, UnitSet:
		return true
	}
	return false
}

// Catalog is a snapshot of products indexed by id, used by the
// pricing engine to resolve invoice lines.
type Catalog map[id.ID]Product

// IndexByID builds a Catalog from a product list.
func IndexByID(products []Product) Catalog {
	catalog := make(Catalog, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	return catalog
}
