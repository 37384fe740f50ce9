// Package customer provides the Customer catalog.
// Customers are the parties invoices are billed to.
package customer

import (
	"context"
	"regexp"

	"limra/internal/core/apperror"
	"limra/internal/core/id"
)

// Pre-compiled regex patterns for validation (performance optimization)
var (
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Type classifies a customer.
type Type string

const (
	TypeRegular   Type = "Regular"
	TypeNew       Type = "New"
	TypeCorporate Type = "Corporate"
)

// Customer represents a billing customer.
type Customer struct {
	ID id.ID `json:"id"`

	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`

	// GSTNo is the optional GST registration number
	GSTNo string `json:"gstNo,omitempty"`

	Type Type `json:"customerType"`
}

// Validate implements self-validation.
func (c *Customer) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !isValidType(c.Type) {
		return apperror.NewValidation("invalid customer type").
			WithDetail("field", "customerType").
			WithDetail("value", string(c.Type))
	}

	if c.Email != "" && !emailRE.MatchString(c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

func isValidType(t Type) bool {
	switch t {
	case TypeRegular, TypeNew, TypeCorporate:
		return true
	}
	return false
}
