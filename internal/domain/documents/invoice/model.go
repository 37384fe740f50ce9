// Package invoice provides the Invoice document.
// An invoice records a sale to a customer as an ordered list of
// product line items.
package invoice

import (
	"context"
	"time"

	"limra/internal/core/apperror"
	"limra/internal/core/id"
	"limra/internal/core/types"
)

// PaymentMethod is how an invoice is settled.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCard       PaymentMethod = "Card"
	PaymentNetBanking PaymentMethod = "Net Banking"
	PaymentCredit     PaymentMethod = "Credit"
)

// Status is the settlement state of an invoice.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusUnpaid  Status = "Unpaid"
	StatusPending Status = "Pending"
)

// Item is one line of an invoice. It has no identity of its own;
// it is owned by its parent invoice.
type Item struct {
	ProductID id.ID `json:"productId"`

	Quantity types.Quantity `json:"quantity"`

	// Discount is a percentage (0-100) applied to this line only
	Discount types.Percent `json:"discount"`
}

// Invoice represents a bill issued to a customer.
// Items and Date are immutable after creation; Status and
// AmountPaid change together through the status update operation.
type Invoice struct {
	ID id.ID `json:"id"`

	// Number is the human-facing invoice number (auto-generated)
	Number string `json:"invoiceNumber"`

	// Date is set at creation and never changes
	Date time.Time `json:"date"`

	CustomerID id.ID `json:"customerId"`

	// Items in insertion order; the order is significant for display
	Items []Item `json:"items"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        Status        `json:"status"`

	// AmountPaid is the cash recognized against this invoice
	AmountPaid types.Money `json:"amountPaid"`
}

// Validate implements self-validation.
func (inv *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(inv.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	if len(inv.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, item := range inv.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if !item.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	if !IsValidPaymentMethod(inv.PaymentMethod) {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "paymentMethod").
			WithDetail("value", string(inv.PaymentMethod))
	}

	if !IsValidStatus(inv.Status) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(inv.Status))
	}

	return nil
}

// IsSettled reports whether the invoice is fully paid.
func (inv *Invoice) IsSettled() bool {
	return inv.Status == StatusPaid
}

// IsValidPaymentMethod reports whether m is a known payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentNetBanking, PaymentCredit:
		return true
	}
	return false
}

// IsValidStatus reports whether s is a known status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPaid, StatusUnpaid, StatusPending:
		return true
	}
	return false
}

// CloneItems returns an independent copy of the item list so shared
// snapshots cannot mutate a stored invoice.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	cloned := make([]Item, len(items))
	copy(cloned, items)
	return cloned
}
