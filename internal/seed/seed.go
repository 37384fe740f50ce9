// Package seed provides the fixture data set the application starts
// from. There is no persistence beyond the theme preference: every
// process start begins from these fixtures.
package seed

import (
	"context"
	"time"

	"limra/internal/core/id"
	"limra/internal/core/types"
	"limra/internal/domain/catalogs/customer"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
	"limra/internal/infrastructure/storage/memory"
)

// Data is the full fixture set with references wired up.
type Data struct {
	Customers []customer.Customer
	Products  []product.Product
	Invoices  []invoice.Invoice
}

// Fixtures builds the seed data set: three customers, seven products
// and four invoices in mixed settlement states.
func Fixtures() Data {
	customers := []customer.Customer{
		{
			ID: id.New(), Name: "John Doe", Mobile: "123-456-7890",
			Email: "john.d@example.com", Address: "123 Main St, Anytown",
			GSTNo: "22AAAAA0000A1Z5", Type: customer.TypeRegular,
		},
		{
			ID: id.New(), Name: "Jane Smith", Mobile: "987-654-3210",
			Email: "jane.s@example.com", Address: "456 Oak Ave, Somewhere",
			GSTNo: "29BBBBB1111B2Z6", Type: customer.TypeNew,
		},
		{
			ID: id.New(), Name: "Corporate Builders", Mobile: "555-555-5555",
			Email: "contact@corp.com", Address: "789 Business Blvd, Metropolis",
			GSTNo: "27CCCCC2222C3Z7", Type: customer.TypeCorporate,
		},
	}

	products := []product.Product{
		{
			ID: id.New(), Name: "Cement Bag", Category: product.CategoryConstruction,
			PurchasePrice: types.MustMoney("350"), SellingPrice: types.MustMoney("400"),
			StockQuantity: types.NewQuantityFromInt64(150), Tax: types.NewPercent(18), Unit: product.UnitPcs,
		},
		{
			ID: id.New(), Name: "TMT Steel Bar (12mm)", Category: product.CategoryConstruction,
			PurchasePrice: types.MustMoney("50"), SellingPrice: types.MustMoney("65"),
			StockQuantity: types.NewQuantityFromInt64(500), Tax: types.NewPercent(18), Unit: product.UnitKg,
		},
		{
			ID: id.New(), Name: "Paint (1 Ltr)", Category: product.CategoryProduct,
			PurchasePrice: types.MustMoney("200"), SellingPrice: types.MustMoney("250"),
			StockQuantity: types.NewQuantityFromInt64(80), Tax: types.NewPercent(12), Unit: product.UnitLtr,
		},
		{
			ID: id.New(), Name: "Electrical Wiring", Category: product.CategoryProduct,
			PurchasePrice: types.MustMoney("800"), SellingPrice: types.MustMoney("1000"),
			StockQuantity: types.NewQuantityFromInt64(40), Tax: types.NewPercent(12), Unit: product.UnitMtr,
		},
		{
			ID: id.New(), Name: "Plumbing Service", Category: product.CategoryService,
			PurchasePrice: types.MustMoney("0"), SellingPrice: types.MustMoney("500"),
			StockQuantity: types.NewQuantityFromInt64(1000), Tax: types.NewPercent(18), Unit: product.UnitSet,
		},
		{
			ID: id.New(), Name: "Architectural Design", Category: product.CategoryService,
			PurchasePrice: types.MustMoney("0"), SellingPrice: types.MustMoney("15000"),
			StockQuantity: types.NewQuantityFromInt64(100), Tax: types.NewPercent(18), Unit: product.UnitSet,
		},
		{
			ID: id.New(), Name: "Bricks", Category: product.CategoryConstruction,
			PurchasePrice: types.MustMoney("8"), SellingPrice: types.MustMoney("10"),
			StockQuantity: types.NewQuantityFromInt64(10000), Tax: types.NewPercent(5), Unit: product.UnitPcs,
		},
	}

	invoices := []invoice.Invoice{
		{
			ID: id.New(), Number: "INV-2024-001",
			Date:       time.Date(2024, time.July, 20, 0, 0, 0, 0, time.Local),
			CustomerID: customers[0].ID,
			Items: []invoice.Item{
				{ProductID: products[0].ID, Quantity: types.NewQuantityFromInt64(10), Discount: types.NewPercent(5)},
				{ProductID: products[1].ID, Quantity: types.NewQuantityFromInt64(50), Discount: types.NewPercent(0)},
			},
			PaymentMethod: invoice.PaymentCard,
			Status:        invoice.StatusPaid,
			AmountPaid:    types.MustMoney("6982.50"),
		},
		{
			ID: id.New(), Number: "INV-2024-002",
			Date:       time.Date(2024, time.July, 21, 0, 0, 0, 0, time.Local),
			CustomerID: customers[1].ID,
			Items: []invoice.Item{
				{ProductID: products[2].ID, Quantity: types.NewQuantityFromInt64(5), Discount: types.NewPercent(0)},
			},
			PaymentMethod: invoice.PaymentUPI,
			Status:        invoice.StatusPaid,
			AmountPaid:    types.MustMoney("1400.00"),
		},
		{
			ID: id.New(), Number: "INV-2024-003",
			Date:       time.Date(2024, time.July, 22, 0, 0, 0, 0, time.Local),
			CustomerID: customers[2].ID,
			Items: []invoice.Item{
				{ProductID: products[5].ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(10)},
			},
			PaymentMethod: invoice.PaymentCredit,
			Status:        invoice.StatusPending,
			AmountPaid:    types.MustMoney("5000"),
		},
		{
			ID: id.New(), Number: "INV-2024-004",
			Date:       time.Now(),
			CustomerID: customers[0].ID,
			Items: []invoice.Item{
				{ProductID: products[6].ID, Quantity: types.NewQuantityFromInt64(500), Discount: types.NewPercent(0)},
			},
			PaymentMethod: invoice.PaymentCredit,
			Status:        invoice.StatusUnpaid,
			AmountPaid:    types.MustMoney("0"),
		},
	}

	return Data{
		Customers: customers,
		Products:  products,
		Invoices:  invoices,
	}
}

// Load seeds the store with the fixture data.
func Load(ctx context.Context, store *memory.Store) Data {
	data := Fixtures()
	store.Load(ctx, data.Customers, data.Products, data.Invoices)
	return data
}
