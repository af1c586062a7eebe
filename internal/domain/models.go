package domain

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// InvoiceItem is a single line on an invoice. Quantity and unit price are
// fractional; the line total is derived, never stored.
type InvoiceItem struct {
	Description string  `json:"description" xml:"description"`
	Quantity    float64 `json:"quantity" xml:"quantity"`
	UnitPrice   float64 `json:"unit_price" xml:"unit_price"`
}

// LineTotal returns quantity * unit price for this item.
func (it InvoiceItem) LineTotal() float64 {
	return it.Quantity * it.UnitPrice
}

// Invoice is the canonical in-memory representation of one invoice. It lives
// for a single request: constructed from validated AI output or from a
// caller-supplied export body, never mutated afterwards, never persisted.
//
// Addresses may contain "\n" line-break markers; encoders translate them to
// their own line-break convention. Dates are opaque text (YYYY-MM-DD by
// convention, not enforced). ThemeColor is carried verbatim and only
// interpreted by the PDF renderer.
type Invoice struct {
	XMLName        xml.Name      `json:"-" xml:"invoice"`
	Title          string        `json:"title" xml:"title"`
	CompanyName    string        `json:"company_name" xml:"company_name"`
	CompanyAddress string        `json:"company_address" xml:"company_address"`
	BillToName     string        `json:"bill_to_name" xml:"bill_to_name"`
	BillToAddress  string        `json:"bill_to_address" xml:"bill_to_address"`
	InvoiceNumber  string        `json:"invoice_number" xml:"invoice_number"`
	Date           string        `json:"date" xml:"date"`
	DueDate        string        `json:"due_date" xml:"due_date"`
	Items          []InvoiceItem `json:"items" xml:"items>item"`
	Notes          *string       `json:"notes" xml:"notes"`
	TaxRate        *float64      `json:"tax_rate" xml:"tax_rate"`
	LogoURL        *string       `json:"logo_url" xml:"logo_url"`
	ThemeColor     string        `json:"theme_color" xml:"theme_color"`
}

// requiredFields lists every field that must be non-empty for the record to
// be valid. Items may be empty; notes, tax_rate, and logo_url are optional.
func (inv *Invoice) requiredFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"title", inv.Title},
		{"company_name", inv.CompanyName},
		{"company_address", inv.CompanyAddress},
		{"bill_to_name", inv.BillToName},
		{"bill_to_address", inv.BillToAddress},
		{"invoice_number", inv.InvoiceNumber},
		{"date", inv.Date},
		{"due_date", inv.DueDate},
		{"theme_color", inv.ThemeColor},
	}
}

// Validate checks that every required field is present. It does not validate
// date formats, quantity signs, or the theme color value.
func (inv *Invoice) Validate() error {
	var missing []string
	for _, f := range inv.requiredFields() {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	for i, it := range inv.Items {
		if strings.TrimSpace(it.Description) == "" {
			missing = append(missing, fmt.Sprintf("items[%d].description", i))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInvoice, strings.Join(missing, ", "))
	}
	return nil
}

// Subtotal returns the sum of all line totals in item order.
func (inv *Invoice) Subtotal() float64 {
	var sum float64
	for _, it := range inv.Items {
		sum += it.LineTotal()
	}
	return sum
}

// TaxAmount returns subtotal * tax_rate / 100. An absent tax rate means no
// tax computation at all, not a zero rate.
func (inv *Invoice) TaxAmount() float64 {
	if inv.TaxRate == nil {
		return 0
	}
	return inv.Subtotal() * *inv.TaxRate / 100
}

// Total returns subtotal plus tax amount.
func (inv *Invoice) Total() float64 {
	return inv.Subtotal() + inv.TaxAmount()
}
