// Package memory provides the in-memory store that owns the
// canonical customer, product, invoice and settings collections.
//
// The store is built for the single-threaded, synchronous execution
// model of the application: every operation runs to completion before
// the next begins, so no locking discipline is applied to the
// collections. A multi-client reimplementation must add transactional
// boundaries around invoice creation (append plus stock deduction)
// and around number generation.
//
// All reads hand out copies; consumers never see (or mutate) the
// stored records themselves. All updates replace whole records.
package memory

import (
	"context"
	"fmt"
	"time"

	"limra/internal/core/apperror"
	"limra/internal/core/id"
	"limra/internal/core/numerator"
	"limra/internal/core/types"
	"limra/internal/domain/catalogs/customer"
	"limra/internal/domain/catalogs/product"
	"limra/internal/domain/documents/invoice"
	"limra/internal/domain/settings"
	"limra/pkg/logger"
)

// invoiceNumbering is the invoice number scheme: INV-<year>-NNN.
// The sequence never resets, so numbers stay unique across year
// rollover even though the year in the prefix changes.
var invoiceNumbering = numerator.Config{
	Prefix:      "INV",
	IncludeYear: true,
	PadWidth:    3,
	ResetPeriod: "never",
}

// PreferenceStore persists the theme preference between runs.
// Implemented by prefs.FileStore.
type PreferenceStore interface {
	// LoadTheme returns the stored theme; ok is false when nothing
	// usable is stored.
	LoadTheme() (theme settings.Theme, ok bool, err error)
	SaveTheme(theme settings.Theme) error
}

// Store owns the canonical collections and the settings record.
type Store struct {
	customers []customer.Customer
	products  []product.Product
	invoices  []invoice.Invoice
	settings  settings.Settings

	seq   *numerator.Service
	prefs PreferenceStore
	now   func() time.Time
	log   *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock (for tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithPreferences attaches a preference store; a stored theme
// overrides the seed default, and theme changes are written through.
func WithPreferences(prefs PreferenceStore) Option {
	return func(s *Store) { s.prefs = prefs }
}

// WithLogger overrides the default logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore creates an empty store with default settings.
func NewStore(opts ...Option) *Store {
	s := &Store{
		settings: settings.Default(),
		seq:      numerator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Default().WithComponent("store")
	}

	if s.prefs != nil {
		theme, ok, err := s.prefs.LoadTheme()
		if err != nil {
			s.log.Warnw("load theme preference", "error", err)
		} else if ok {
			s.settings.Theme = theme
		}
	}

	return s
}

// --- Snapshots ---

// Customers returns a copy of the customer collection.
func (s *Store) Customers() []customer.Customer {
	out := make([]customer.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Products returns a copy of the product collection.
func (s *Store) Products() []product.Product {
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Invoices returns a deep copy of the invoice collection.
func (s *Store) Invoices() []invoice.Invoice {
	out := make([]invoice.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		inv.Items = invoice.CloneItems(inv.Items)
		out[i] = inv
	}
	return out
}

// Settings returns the current settings record.
func (s *Store) Settings() settings.Settings {
	return s.settings
}

// --- Customers ---

// AddCustomer validates the customer, assigns an id and appends it.
func (s *Store) AddCustomer(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	c.ID = id.New()
	if err := c.Validate(ctx); err != nil {
		return customer.Customer{}, err
	}

	s.customers = append(s.customers, c)
	logger.Info(ctx, "customer added", "id", c.ID, "name", c.Name)
	return c, nil
}

// UpdateCustomer replaces the whole record matching the customer's id.
func (s *Store) UpdateCustomer(ctx context.Context, c customer.Customer) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return nil
		}
	}
	return apperror.NewNotFound("customer", c.ID)
}

// DeleteCustomer removes the customer with the given id. Invoices
// referencing it are left dangling; readers resolve them as unknown.
func (s *Store) DeleteCustomer(ctx context.Context, customerID id.ID) error {
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("customer", customerID)
}

// --- Products ---

// AddProduct validates the product, assigns an id and appends it.
func (s *Store) AddProduct(ctx context.Context, p product.Product) (product.Product, error) {
	p.ID = id.New()
	if err := p.Validate(ctx); err != nil {
		return product.Product{}, err
	}

	s.products = append(s.products, p)
	logger.Info(ctx, "product added", "id", p.ID, "name", p.Name)
	return p, nil
}

// UpdateProduct replaces the whole record matching the product's id.
func (s *Store) UpdateProduct(ctx context.Context, p product.Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return apperror.NewNotFound("product", p.ID)
}

// DeleteProduct removes the product with the given id. Invoice lines
// referencing it are left dangling; pricing skips them.
func (s *Store) DeleteProduct(ctx context.Context, productID id.ID) error {
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("product", productID)
}

// --- Invoices ---

// CreateInvoice validates the draft, assigns id, number and date,
// appends the invoice and deducts each line's quantity from the
// referenced product's stock.
//
// The append and the deductions form one logical transaction under
// the single-threaded model. A line whose product cannot be found
// leaves stock unadjusted but does not roll back the invoice; the
// partial failure is tolerated and logged.
func (s *Store) CreateInvoice(ctx context.Context, draft invoice.Invoice) (invoice.Invoice, error) {
	draft.ID = id.New()
	if err := draft.Validate(ctx); err != nil {
		return invoice.Invoice{}, err
	}

	draft.Date = s.now()
	if draft.Number == "" {
		draft.Number = s.seq.Next(invoiceNumbering, draft.Date)
	}
	draft.Items = invoice.CloneItems(draft.Items)

	s.invoices = append(s.invoices, draft)

	for _, item := range draft.Items {
		if !s.adjustStock(item.ProductID, item.Quantity.Neg()) {
			logger.Warn(ctx, "stock not adjusted, product missing",
				"invoice", draft.Number, "product_id", item.ProductID)
		}
	}

	logger.Info(ctx, "invoice created", "id", draft.ID, "number", draft.Number)
	return draft, nil
}

// UpdateInvoiceStatus replaces only status and amount paid on the
// matching invoice. Items and date are immutable after creation.
func (s *Store) UpdateInvoiceStatus(ctx context.Context, invoiceID id.ID, status invoice.Status, amountPaid types.Money) error {
	if !invoice.IsValidStatus(status) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(status))
	}

	for i := range s.invoices {
		if s.invoices[i].ID == invoiceID {
			s.invoices[i].Status = status
			s.invoices[i].AmountPaid = amountPaid
			logger.Info(ctx, "invoice status updated",
				"id", invoiceID, "status", string(status))
			return nil
		}
	}
	return apperror.NewNotFound("invoice", invoiceID)
}

// adjustStock applies a delta to a product's stock quantity.
// Reports false when the product does not exist.
func (s *Store) adjustStock(productID id.ID, delta types.Quantity) bool {
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].StockQuantity += delta
			return true
		}
	}
	return false
}

// --- Settings ---

// UpdateSettings applies the patch and returns the updated record.
// A theme change is written through to the preference store.
func (s *Store) UpdateSettings(ctx context.Context, patch settings.Patch) (settings.Settings, error) {
	if patch.Theme != nil && !settings.IsValidTheme(*patch.Theme) {
		return s.settings, apperror.NewValidation("invalid theme").
			WithDetail("field", "theme").
			WithDetail("value", string(*patch.Theme))
	}

	updated := s.settings.Apply(patch)
	if patch.Theme != nil && s.prefs != nil && updated.Theme != s.settings.Theme {
		if err := s.prefs.SaveTheme(updated.Theme); err != nil {
			return s.settings, fmt.Errorf("save theme preference: %w", err)
		}
	}

	s.settings = updated
	return s.settings, nil
}

// --- Loading ---

// Load replaces the collections with the given data and advances the
// invoice number sequence past the loaded invoices. Used at process
// start to apply seed or persisted data.
func (s *Store) Load(ctx context.Context, customers []customer.Customer, products []product.Product, invoices []invoice.Invoice) {
	s.customers = make([]customer.Customer, len(customers))
	copy(s.customers, customers)

	s.products = make([]product.Product, len(products))
	copy(s.products, products)

	s.invoices = make([]invoice.Invoice, len(invoices))
	for i, inv := range invoices {
		inv.Items = invoice.CloneItems(inv.Items)
		s.invoices[i] = inv
	}

	s.seq.SetNext(invoiceNumbering, s.now(), int64(len(invoices))+1)

	logger.Info(ctx, "store loaded",
		"customers", len(customers),
		"products", len(products),
		"invoices", len(invoices))
}
