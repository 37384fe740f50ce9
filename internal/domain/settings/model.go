// Package settings provides the process-wide application settings.
package settings

import (
	"limra/internal/core/types"
)

// Theme is the UI theme selection. It is the only setting that is
// round-tripped to durable storage between runs.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValidTheme reports whether t is a known theme.
func IsValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// BusinessDetails describe the issuing business on printed invoices.
type BusinessDetails struct {
	Logo    string `json:"logo"`
	Name    string `json:"name"`
	Address string `json:"address"`
	GST     string `json:"gst"`
	Contact string `json:"contact"`
}

// Settings is the application settings record.
type Settings struct {
	Theme           Theme           `json:"theme"`
	BusinessDetails BusinessDetails `json:"businessDetails"`
	DefaultTax      types.Percent   `json:"defaultTax"`
	DefaultDiscount types.Percent   `json:"defaultDiscount"`

	// Currency is the display symbol
	Currency string `json:"currency"`
}

// Default returns the seed settings.
func Default() Settings {
	return Settings{
		Theme: ThemeLight,
		BusinessDetails: BusinessDetails{
			Logo:    "https://picsum.photos/100",
			Name:    "Limra Construction & Supplies",
			Address: "123 Builder Lane, Structure City",
			GST:     "27BITHP1234F1Z5",
			Contact: "+91 98765 43210",
		},
		DefaultTax:      types.NewPercent(18),
		DefaultDiscount: types.NewPercent(0),
		Currency:        "₹",
	}
}

// Patch is an explicit partial update: only non-nil fields change.
// The set of mutable fields stays auditable, unlike a generic
// shallow merge.
type Patch struct {
	Theme           *Theme
	BusinessDetails *BusinessDetails
	DefaultTax      *types.Percent
	DefaultDiscount *types.Percent
	Currency        *string
}

// Apply returns a copy of s with the patch's non-nil fields applied.
func (s Settings) Apply(p Patch) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.BusinessDetails != nil {
		s.BusinessDetails = *p.BusinessDetails
	}
	if p.DefaultTax != nil {
		s.DefaultTax = *p.DefaultTax
	}
	if p.DefaultDiscount != nil {
		s.DefaultDiscount = *p.DefaultDiscount
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	return s
}
