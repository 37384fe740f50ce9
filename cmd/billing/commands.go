package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"limra/internal/core/types"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/reports"
	"limra/internal/domain/settings"
	"limra/internal/infrastructure/storage/memory"
)

type application struct {
	ctx     context.Context
	store   *memory.Store
	reports *reports.Service
}

func (a *application) money(m types.Money) string {
	return a.store.Settings().Currency + m.StringFixed(2)
}

func newRootCmd(app *application) *cobra.Command {
	root := &cobra.Command{
		Use:   "billing",
		Short: "Billing and inventory for a small business",
		Long: `billing renders dashboard, invoice and report views over the
in-memory billing core, seeded from fixture data on every run.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newDashboardCmd(app),
		newInvoicesCmd(app),
		newReportCmd(app),
		newThemeCmd(app),
	)
	return root
}

func newDashboardCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show sales and stock KPIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := app.reports.Dashboard()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Sales Today\t%s\n", app.money(d.SalesToday))
			fmt.Fprintf(w, "Sales This Month\t%s\n", app.money(d.SalesThisMonth))
			fmt.Fprintf(w, "Sales This Year\t%s\n", app.money(d.SalesThisYear))
			fmt.Fprintf(w, "Pending Bills\t%d / %s\n", d.PendingBills, app.money(d.PendingAmount))
			fmt.Fprintf(w, "Paid Bills\t%d\n", d.PaidBills)
			fmt.Fprintf(w, "Low Stock Products\t%d\n", d.LowStockCount)
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nMonthly Sales (%d)\n", time.Now().Year())
			mw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, sales := range d.MonthlySales {
				month := time.Month(i + 1)
				fmt.Fprintf(mw, "%s\t%s\n", month.String()[:3], app.money(sales))
			}
			return mw.Flush()
		},
	}
}

func newInvoicesCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "invoices",
		Short: "List invoices, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUMBER\tDATE\tCUSTOMER\tTOTAL\tPAID\tBALANCE\tSTATUS")
			for _, inv := range app.reports.Invoices() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.Number,
					inv.Date.Format("2006-01-02"),
					inv.CustomerName,
					app.money(inv.Total),
					app.money(inv.AmountPaid),
					app.money(inv.Balance),
					inv.Status,
				)
			}
			return w.Flush()
		},
	}
}

func newReportCmd(app *application) *cobra.Command {
	report := &cobra.Command{
		Use:   "report",
		Short: "Generate sales and stock reports",
	}

	var dateFlag string
	daily := &cobra.Command{
		Use:   "daily",
		Short: "Paid invoices for a calendar day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if dateFlag != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				date = parsed
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INVOICE\tCUSTOMER\tTOTAL")
			for _, row := range app.reports.DailySales(date) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.InvoiceNumber, row.CustomerName, app.money(row.Total))
			}
			return w.Flush()
		},
	}
	daily.Flags().StringVar(&dateFlag, "date", "", "report date (YYYY-MM-DD), defaults to today")

	customerWise := &cobra.Command{
		Use:   "customer",
		Short: "Paid sales per customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CUSTOMER\tINVOICES\tTOTAL PURCHASE")
			for _, row := range app.reports.CustomerWise() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", row.CustomerName, row.Invoices, app.money(row.Total))
			}
			return w.Flush()
		},
	}

	productWise := &cobra.Command{
		Use:   "product",
		Short: "Quantity sold and sales per product",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tQUANTITY\tTOTAL SALES")
			for _, row := range app.reports.ProductWise() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.ProductName, row.Quantity, app.money(row.Total))
			}
			return w.Flush()
		},
	}

	var categoryFlag, levelFlag string
	stock := &cobra.Command{
		Use:   "stock",
		Short: "Stock levels and valuation",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := reports.StockFilter{}
			if categoryFlag != "" {
				filter.Category = productCategory(categoryFlag)
			}
			if levelFlag != "" {
				filter.Level = stockLevel(levelFlag)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tCATEGORY\tQUANTITY\tSTOCK VALUE\tSTATUS")
			for _, row := range app.reports.StockStatus(filter) {
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n",
					row.ProductName, row.Category, row.Quantity, row.Unit,
					app.money(row.StockValue), row.Level)
			}
			return w.Flush()
		},
	}
	stock.Flags().StringVar(&categoryFlag, "category", "", "filter by category (Product, Service, Construction)")
	stock.Flags().StringVar(&levelFlag, "status", "", "filter by status (in, low, out)")

	report.AddCommand(daily, customerWise, productWise, stock)
	return report
}

func newThemeCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Set the persisted theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := settings.Theme(args[0])
			updated, err := app.store.UpdateSettings(app.ctx, settings.Patch{Theme: &theme})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", updated.Theme)
			return nil
		},
	}
}

func productCategory(s string) product.Category {
	switch s {
	case "Product":
		return product.CategoryProduct
	case "Service":
		return product.CategoryService
	case "Construction":
		return product.CategoryConstruction
	}
	return product.Category(s)
}

func stockLevel(s string) reports.StockLevel {
	switch s {
	case "in":
		return reports.StockIn
	case "low":
		return reports.StockLow
	case "out":
		return reports.StockOut
	}
	return reports.StockLevel(s)
}
