// Package reports derives read-only views over the invoice, customer
// and product collections: dashboard KPIs, invoice enrichment and the
// sales/stock reports.
package reports

import (
	"limra/internal/core/id"
	"limra/internal/core/types"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
)

// UnknownCustomerName is displayed when an invoice references a
// customer that no longer exists (dangling references are tolerated,
// not errors).
const UnknownCustomerName = "N/A"

// EnrichedInvoice is an invoice joined with its customer and its
// recomputed total for the invoice list view.
type EnrichedInvoice struct {
	invoice.Invoice

	// CustomerName resolved via CustomerID, UnknownCustomerName if dangling
	CustomerName string `json:"customerName"`

	// Total is recomputed from items, never stored
	Total types.Money `json:"total"`

	// Balance is Total minus AmountPaid; negative if overpaid
	Balance types.Money `json:"balance"`
}

// Dashboard holds the KPI figures for the dashboard view.
type Dashboard struct {
	// Sales figures sum AmountPaid over Paid invoices in the window:
	// "sales" means cash actually recognized as paid.
	SalesToday     types.Money `json:"salesToday"`
	SalesThisMonth types.Money `json:"salesThisMonth"`
	SalesThisYear  types.Money `json:"salesThisYear"`

	// PendingBills counts Pending and Unpaid invoices; PendingAmount
	// sums their computed total minus amount paid.
	PendingBills  int         `json:"pendingBills"`
	PendingAmount types.Money `json:"pendingAmount"`

	PaidBills int `json:"paidBills"`

	LowStockCount int `json:"lowStockCount"`

	// MonthlySales holds one bucket per month (Jan-Dec) of the
	// current year; months with no sales are zero, not omitted.
	MonthlySales [12]types.Money `json:"monthlySales"`
}

// DailySalesRow is one Paid invoice on the report date.
type DailySalesRow struct {
	InvoiceID     id.ID  `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
	CustomerName  string `json:"customerName"`

	// Total is the amount paid, the figure displayed by the report
	Total types.Money `json:"total"`
}

// CustomerSalesRow aggregates Paid invoices per customer.
// Customers with no paid invoices still appear with zero totals.
type CustomerSalesRow struct {
	CustomerID   id.ID       `json:"customerId"`
	CustomerName string      `json:"customerName"`
	Invoices     int         `json:"invoices"`
	Total        types.Money `json:"total"`
}

// ProductSalesRow aggregates Paid invoice lines per product.
// Total is tax-exclusive (selling price after discount), which is
// intentionally a different base than the invoice grand total.
type ProductSalesRow struct {
	ProductID   id.ID          `json:"productId"`
	ProductName string         `json:"productName"`
	Quantity    types.Quantity `json:"quantity"`
	Total       types.Money    `json:"total"`
}

// StockLevel classifies a product's stock position.
type StockLevel string

const (
	StockIn  StockLevel = "In Stock"
	StockLow StockLevel = "Low Stock"
	StockOut StockLevel = "Out of Stock"
)

// StockRow is one product in the stock status report.
type StockRow struct {
	ProductID     id.ID            `json:"productId"`
	ProductName   string           `json:"productName"`
	Category      product.Category `json:"category"`
	Unit          product.Unit     `json:"unit"`
	PurchasePrice types.Money      `json:"purchasePrice"`
	SellingPrice  types.Money      `json:"sellingPrice"`
	Quantity      types.Quantity   `json:"quantity"`

	// StockValue is quantity at cost basis
	StockValue types.Money `json:"stockValue"`

	Level StockLevel `json:"level"`
}

// StockFilter narrows the stock status report. Zero values match all.
type StockFilter struct {
	Category product.Category
	Level    StockLevel
}
