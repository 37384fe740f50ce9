package reports

import (
	"sort"
	"time"

	"limra/internal/core/id"
	"limra/internal/core/types"
	"limra/internal/domain/catalogs/customer"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
	"limra/internal/domain/pricing"
)

// Repository supplies collection snapshots for report generation.
// The memory store implements it; snapshots are copies, so report
// functions can never mutate shared records.
type Repository interface {
	Customers() []customer.Customer
	Products() []product.Product
	Invoices() []invoice.Invoice
}

// Service provides report generation operations over a repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock (for tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new reports service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invoices returns the enriched invoice list, most recent first.
func (s *Service) Invoices() []EnrichedInvoice {
	return EnrichInvoices(s.repo.Invoices(), s.repo.Customers(), s.repo.Products())
}

// Dashboard returns the dashboard KPIs as of the current wall clock.
func (s *Service) Dashboard() Dashboard {
	return DashboardSummary(s.repo.Invoices(), s.repo.Products(), s.now())
}

// DailySales returns the daily-sales report for the given date.
func (s *Service) DailySales(date time.Time) []DailySalesRow {
	return DailySales(date, s.repo.Invoices(), s.repo.Customers())
}

// CustomerWise returns the customer-wise sales report.
func (s *Service) CustomerWise() []CustomerSalesRow {
	return CustomerWise(s.repo.Invoices(), s.repo.Customers())
}

// ProductWise returns the product-wise sales report.
func (s *Service) ProductWise() []ProductSalesRow {
	return ProductWise(s.repo.Invoices(), s.repo.Products())
}

// StockStatus returns the stock status report.
func (s *Service) StockStatus(filter StockFilter) []StockRow {
	return StockStatus(s.repo.Products(), filter)
}

// EnrichInvoices joins each invoice with its customer name and its
// recomputed total and balance, ordered by date descending.
// A dangling customer reference yields UnknownCustomerName.
func EnrichInvoices(invoices []invoice.Invoice, customers []customer.Customer, products []product.Product) []EnrichedInvoice {
	names := make(map[id.ID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	catalog := product.IndexByID(products)

	enriched := make([]EnrichedInvoice, 0, len(invoices))
	for _, inv := range invoices {
		name, ok := names[inv.CustomerID]
		if !ok {
			name = UnknownCustomerName
		}

		total := pricing.ComputeInvoice(inv.Items, catalog).GrandTotal
		enriched = append(enriched, EnrichedInvoice{
			Invoice:      inv,
			CustomerName: name,
			Total:        total,
			Balance:      total.Sub(inv.AmountPaid),
		})
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Date.After(enriched[j].Date)
	})
	return enriched
}

// DashboardSummary reduces the collections to the dashboard KPIs.
// Date windows are computed from the local wall-clock now.
func DashboardSummary(invoices []invoice.Invoice, products []product.Product, now time.Time) Dashboard {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	catalog := product.IndexByID(products)

	d := Dashboard{
		SalesToday:     types.Zero(),
		SalesThisMonth: types.Zero(),
		SalesThisYear:  types.Zero(),
		PendingAmount:  types.Zero(),
	}
	for i := range d.MonthlySales {
		d.MonthlySales[i] = types.Zero()
	}

	for _, inv := range invoices {
		switch inv.Status {
		case invoice.StatusPaid:
			d.PaidBills++

			if !inv.Date.Before(startOfToday) {
				d.SalesToday = d.SalesToday.Add(inv.AmountPaid)
			}
			if !inv.Date.Before(startOfMonth) {
				d.SalesThisMonth = d.SalesThisMonth.Add(inv.AmountPaid)
			}
			if !inv.Date.Before(startOfYear) {
				d.SalesThisYear = d.SalesThisYear.Add(inv.AmountPaid)
			}
			if inv.Date.Year() == now.Year() {
				m := int(inv.Date.Month()) - 1
				d.MonthlySales[m] = d.MonthlySales[m].Add(inv.AmountPaid)
			}

		case invoice.StatusPending, invoice.StatusUnpaid:
			d.PendingBills++
			total := pricing.ComputeInvoice(inv.Items, catalog).GrandTotal
			d.PendingAmount = d.PendingAmount.Add(total.Sub(inv.AmountPaid))
		}
	}

	for _, p := range products {
		if p.IsLowStock() {
			d.LowStockCount++
		}
	}

	return d
}

// DailySales lists every Paid invoice whose date falls within the
// calendar day of the given date.
func DailySales(date time.Time, invoices []invoice.Invoice, customers []customer.Customer) []DailySalesRow {
	names := make(map[id.ID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	rows := make([]DailySalesRow, 0)
	for _, inv := range invoices {
		if inv.Status != invoice.StatusPaid {
			continue
		}
		if inv.Date.Before(startOfDay) || !inv.Date.Before(endOfDay) {
			continue
		}

		name, ok := names[inv.CustomerID]
		if !ok {
			name = UnknownCustomerName
		}
		rows = append(rows, DailySalesRow{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.Number,
			CustomerName:  name,
			Total:         inv.AmountPaid,
		})
	}
	return rows
}

// CustomerWise aggregates Paid invoices per customer, sorted by total
// purchase amount descending. Every customer appears, including those
// with no paid invoices.
func CustomerWise(invoices []invoice.Invoice, customers []customer.Customer) []CustomerSalesRow {
	rows := make([]CustomerSalesRow, 0, len(customers))
	for _, c := range customers {
		row := CustomerSalesRow{
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Total:        types.Zero(),
		}
		for _, inv := range invoices {
			if inv.CustomerID != c.ID || inv.Status != invoice.StatusPaid {
				continue
			}
			row.Invoices++
			row.Total = row.Total.Add(inv.AmountPaid)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

// ProductWise aggregates Paid invoice lines per product, sorted by
// total sales amount descending. The total is tax-exclusive: selling
// price times quantity after the line discount. Only products that
// appear on at least one Paid invoice are listed; lines with dangling
// product references are skipped.
func ProductWise(invoices []invoice.Invoice, products []product.Product) []ProductSalesRow {
	catalog := product.IndexByID(products)

	totals := make(map[id.ID]*ProductSalesRow)
	order := make([]id.ID, 0)

	for _, inv := range invoices {
		if inv.Status != invoice.StatusPaid {
			continue
		}
		for _, item := range inv.Items {
			p, ok := catalog[item.ProductID]
			if !ok {
				continue
			}

			row, seen := totals[item.ProductID]
			if !seen {
				row = &ProductSalesRow{
					ProductID:   p.ID,
					ProductName: p.Name,
					Total:       types.Zero(),
				}
				totals[item.ProductID] = row
				order = append(order, item.ProductID)
			}

			line := pricing.ComputeLine(item, p)
			row.Quantity += item.Quantity
			row.Total = row.Total.Add(line.Gross.Sub(line.DiscountAmount))
		}
	}

	rows := make([]ProductSalesRow, 0, len(order))
	for _, pid := range order {
		rows = append(rows, *totals[pid])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

// StockStatus classifies every product's stock position, optionally
// narrowed by category and level. Exactly zero stock counts as out of
// stock; anything else below the threshold counts as low.
func StockStatus(products []product.Product, filter StockFilter) []StockRow {
	rows := make([]StockRow, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}

		level := StockIn
		if p.StockQuantity.IsZero() {
			level = StockOut
		} else if p.IsLowStock() {
			level = StockLow
		}
		if filter.Level != "" && level != filter.Level {
			continue
		}

		rows = append(rows, StockRow{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Category:      p.Category,
			Unit:          p.Unit,
			PurchasePrice: p.PurchasePrice,
			SellingPrice:  p.SellingPrice,
			Quantity:      p.StockQuantity,
			StockValue:    p.StockValue(),
			Level:         level,
		})
	}
	return rows
}
