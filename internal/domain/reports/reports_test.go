package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limra/internal/core/id"
	"limra/internal/core/types"
	"limra/internal/domain/catalogs/customer"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
	"limra/internal/domain/pricing"
)

// now is a fixed reference clock: mid-month, mid-year.
var now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.Local)

func testProduct(name, sellingPrice string, tax float64, stock int64) product.Product {
	return product.Product{
		ID:            id.New(),
		Name:          name,
		Category:      product.CategoryProduct,
		PurchasePrice: types.MustMoney(sellingPrice),
		SellingPrice:  types.MustMoney(sellingPrice),
		StockQuantity: types.NewQuantityFromInt64(stock),
		Tax:           types.NewPercent(tax),
		Unit:          product.UnitPcs,
	}
}

func testCustomer(name string) customer.Customer {
	return customer.Customer{ID: id.New(), Name: name, Type: customer.TypeRegular}
}

func paidInvoice(customerID id.ID, date time.Time, amountPaid string, items ...invoice.Item) invoice.Invoice {
	return invoice.Invoice{
		ID:            id.New(),
		Number:        "INV-2024-001",
		Date:          date,
		CustomerID:    customerID,
		Items:         items,
		PaymentMethod: invoice.PaymentCash,
		Status:        invoice.StatusPaid,
		AmountPaid:    types.MustMoney(amountPaid),
	}
}

func TestEnrichInvoices(t *testing.T) {
	cust := testCustomer("John Doe")
	p := testProduct("Cement Bag", "400", 18, 100)

	older := paidInvoice(cust.ID, now.AddDate(0, 0, -2), "1000",
		invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(10), Discount: types.NewPercent(5)})
	newer := paidInvoice(cust.ID, now, "500",
		invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(0)})
	dangling := paidInvoice(id.New(), now.AddDate(0, 0, -1), "0",
		invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(0)})

	enriched := EnrichInvoices(
		[]invoice.Invoice{older, newer, dangling},
		[]customer.Customer{cust},
		[]product.Product{p},
	)
	require.Len(t, enriched, 3)

	// Ordered by date descending.
	for i := 1; i < len(enriched); i++ {
		assert.False(t, enriched[i].Date.After(enriched[i-1].Date),
			"invoice %d dated after invoice %d", i, i-1)
	}

	// Totals are recomputed from items, and balance = total - paid.
	catalog := product.IndexByID([]product.Product{p})
	for _, e := range enriched {
		want := pricing.ComputeInvoice(e.Items, catalog).GrandTotal
		assert.True(t, e.Total.Equal(want))
		assert.True(t, e.Balance.Equal(e.Total.Sub(e.AmountPaid)))
	}

	assert.Equal(t, "John Doe", enriched[0].CustomerName)
	assert.Equal(t, UnknownCustomerName, enriched[1].CustomerName)
}

func TestDashboardSummary(t *testing.T) {
	cust := testCustomer("Jane Smith")
	p := testProduct("Paint", "250", 0, 100)
	item := invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(2), Discount: types.NewPercent(0)}

	paidA := paidInvoice(cust.ID, now.AddDate(0, 0, -3), "100", item)
	paidB := paidInvoice(cust.ID, now.AddDate(0, 0, -4), "200", item)

	pending := paidInvoice(cust.ID, now.AddDate(0, 0, -1), "50", item)
	pending.Status = invoice.StatusPending

	d := DashboardSummary([]invoice.Invoice{paidA, paidB, pending}, []product.Product{p}, now)

	assert.True(t, d.SalesThisMonth.Equal(types.MustMoney("300")), "month sales: %s", d.SalesThisMonth)
	assert.True(t, d.SalesThisYear.Equal(types.MustMoney("300")))
	assert.True(t, d.SalesToday.IsZero())
	assert.Equal(t, 1, d.PendingBills)
	assert.Equal(t, 2, d.PaidBills)

	// Pending amount is computed total minus amount paid: 500 - 50.
	assert.True(t, d.PendingAmount.Equal(types.MustMoney("450")), "pending: %s", d.PendingAmount)
}

func TestDashboardSummary_MonthlySeries(t *testing.T) {
	cust := testCustomer("Jane Smith")
	p := testProduct("Paint", "250", 0, 100)
	item := invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(0)}

	march := paidInvoice(cust.ID, time.Date(now.Year(), time.March, 5, 0, 0, 0, 0, time.Local), "120", item)
	julyA := paidInvoice(cust.ID, now, "80", item)
	julyB := paidInvoice(cust.ID, now.AddDate(0, 0, -5), "20", item)
	lastYear := paidInvoice(cust.ID, now.AddDate(-1, 0, 0), "999", item)

	d := DashboardSummary([]invoice.Invoice{march, julyA, julyB, lastYear}, []product.Product{p}, now)

	assert.True(t, d.MonthlySales[int(time.March)-1].Equal(types.MustMoney("120")))
	assert.True(t, d.MonthlySales[int(time.July)-1].Equal(types.MustMoney("100")))
	for _, m := range []time.Month{time.January, time.February, time.April, time.December} {
		assert.True(t, d.MonthlySales[int(m)-1].IsZero(), "month %s not zero", m)
	}
}

func TestDashboardSummary_LowStockCount(t *testing.T) {
	products := []product.Product{
		testProduct("Plenty", "10", 0, 150),
		testProduct("Exactly 20", "10", 0, 20),
		testProduct("Low", "10", 0, 19),
		testProduct("Out", "10", 0, 0),
	}

	d := DashboardSummary(nil, products, now)
	assert.Equal(t, 2, d.LowStockCount)
}

func TestDailySales(t *testing.T) {
	cust := testCustomer("John Doe")
	p := testProduct("Bricks", "10", 5, 100)
	item := invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(0)}

	onDay := paidInvoice(cust.ID, time.Date(2024, time.July, 20, 15, 30, 0, 0, time.Local), "500", item)
	dayBefore := paidInvoice(cust.ID, time.Date(2024, time.July, 19, 23, 59, 0, 0, time.Local), "100", item)
	unpaidOnDay := paidInvoice(cust.ID, time.Date(2024, time.July, 20, 9, 0, 0, 0, time.Local), "0", item)
	unpaidOnDay.Status = invoice.StatusUnpaid

	rows := DailySales(
		time.Date(2024, time.July, 20, 0, 0, 0, 0, time.Local),
		[]invoice.Invoice{onDay, dayBefore, unpaidOnDay},
		[]customer.Customer{cust},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, onDay.Number, rows[0].InvoiceNumber)
	assert.Equal(t, "John Doe", rows[0].CustomerName)
	// The displayed total is the amount paid.
	assert.True(t, rows[0].Total.Equal(types.MustMoney("500")))
}

func TestCustomerWise(t *testing.T) {
	big := testCustomer("Corporate Builders")
	small := testCustomer("John Doe")
	silent := testCustomer("Jane Smith")
	p := testProduct("Cement Bag", "400", 18, 100)
	item := invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(0)}

	invoices := []invoice.Invoice{
		paidInvoice(small.ID, now, "200", item),
		paidInvoice(big.ID, now, "5000", item),
		paidInvoice(big.ID, now.AddDate(0, 0, -1), "3000", item),
	}
	pendingBig := paidInvoice(big.ID, now, "100", item)
	pendingBig.Status = invoice.StatusPending
	invoices = append(invoices, pendingBig)

	rows := CustomerWise(invoices, []customer.Customer{small, big, silent})
	require.Len(t, rows, 3)

	// Sorted by total purchase descending; pending invoices not counted.
	assert.Equal(t, "Corporate Builders", rows[0].CustomerName)
	assert.Equal(t, 2, rows[0].Invoices)
	assert.True(t, rows[0].Total.Equal(types.MustMoney("8000")))

	assert.Equal(t, "John Doe", rows[1].CustomerName)

	// Customers with no paid invoices still appear with zero totals.
	assert.Equal(t, "Jane Smith", rows[2].CustomerName)
	assert.Equal(t, 0, rows[2].Invoices)
	assert.True(t, rows[2].Total.IsZero())
}

func TestProductWise(t *testing.T) {
	cust := testCustomer("John Doe")
	p := testProduct("Widget", "10", 18, 100)

	// Two paid invoices, each selling 5 units at discount 0.
	invA := paidInvoice(cust.ID, now, "50",
		invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(5), Discount: types.NewPercent(0)})
	invB := paidInvoice(cust.ID, now, "50",
		invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(5), Discount: types.NewPercent(0)})

	rows := ProductWise([]invoice.Invoice{invA, invB}, []product.Product{p})
	require.Len(t, rows, 1)

	assert.Equal(t, types.NewQuantityFromInt64(10), rows[0].Quantity)
	// Tax-exclusive: 10 x 10 x (1 - 0) = 100, even though tax is 18%.
	assert.True(t, rows[0].Total.Equal(types.MustMoney("100")), "total: %s", rows[0].Total)
}

func TestProductWise_SortAndSkips(t *testing.T) {
	cust := testCustomer("John Doe")
	cheap := testProduct("Bricks", "10", 5, 100)
	dear := testProduct("Design", "15000", 18, 100)

	inv := paidInvoice(cust.ID, now, "0",
		invoice.Item{ProductID: cheap.ID, Quantity: types.NewQuantityFromInt64(10), Discount: types.NewPercent(0)},
		invoice.Item{ProductID: dear.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(10)},
		invoice.Item{ProductID: id.New(), Quantity: types.NewQuantityFromInt64(999), Discount: types.NewPercent(0)},
	)
	unpaid := paidInvoice(cust.ID, now, "0",
		invoice.Item{ProductID: cheap.ID, Quantity: types.NewQuantityFromInt64(500), Discount: types.NewPercent(0)})
	unpaid.Status = invoice.StatusUnpaid

	rows := ProductWise([]invoice.Invoice{inv, unpaid}, []product.Product{cheap, dear})
	require.Len(t, rows, 2, "dangling line skipped, unpaid invoice ignored")

	assert.Equal(t, "Design", rows[0].ProductName)
	assert.True(t, rows[0].Total.Equal(types.MustMoney("13500")), "total: %s", rows[0].Total)
	assert.Equal(t, "Bricks", rows[1].ProductName)
	assert.Equal(t, types.NewQuantityFromInt64(10), rows[1].Quantity)
}

func TestStockStatus(t *testing.T) {
	in := testProduct("Plenty", "10", 0, 150)
	boundary := testProduct("Exactly 20", "10", 0, 20)
	low := testProduct("Low", "10", 0, 19)
	out := testProduct("Out", "10", 0, 0)
	service := testProduct("Service", "500", 0, 100)
	service.Category = product.CategoryService

	products := []product.Product{in, boundary, low, out, service}

	rows := StockStatus(products, StockFilter{})
	require.Len(t, rows, 5)

	levels := map[string]StockLevel{}
	for _, row := range rows {
		levels[row.ProductName] = row.Level
	}
	assert.Equal(t, StockIn, levels["Plenty"])
	assert.Equal(t, StockIn, levels["Exactly 20"])
	assert.Equal(t, StockLow, levels["Low"])
	assert.Equal(t, StockOut, levels["Out"])

	// Stock value is quantity at cost basis.
	assert.True(t, rows[0].StockValue.Equal(types.MustMoney("1500")))

	t.Run("filter by level", func(t *testing.T) {
		lowRows := StockStatus(products, StockFilter{Level: StockLow})
		require.Len(t, lowRows, 1)
		assert.Equal(t, "Low", lowRows[0].ProductName)
	})

	t.Run("filter by category", func(t *testing.T) {
		serviceRows := StockStatus(products, StockFilter{Category: product.CategoryService})
		require.Len(t, serviceRows, 1)
		assert.Equal(t, "Service", serviceRows[0].ProductName)
	})
}

func TestService_UsesInjectedClock(t *testing.T) {
	cust := testCustomer("John Doe")
	p := testProduct("Paint", "250", 0, 100)
	item := invoice.Item{ProductID: p.ID, Quantity: types.NewQuantityFromInt64(1), Discount: types.NewPercent(0)}
	inv := paidInvoice(cust.ID, now, "250", item)

	svc := NewService(staticRepo{
		customers: []customer.Customer{cust},
		products:  []product.Product{p},
		invoices:  []invoice.Invoice{inv},
	}, WithClock(func() time.Time { return now }))

	d := svc.Dashboard()
	assert.True(t, d.SalesToday.Equal(types.MustMoney("250")))
}

type staticRepo struct {
	customers []customer.Customer
	products  []product.Product
	invoices  []invoice.Invoice
}

func (r staticRepo) Customers() []customer.Customer { return r.customers }
func (r staticRepo) Products() []product.Product    { return r.products }
func (r staticRepo) Invoices() []invoice.Invoice    { return r.invoices }
