package fpdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"invogen/internal/domain"
)

const currencySymbol = "$"

// Renderer implements port.DocumentRenderer using gofpdf. It is stateless;
// one Renderer serves all requests.
type Renderer struct{}

// NewRenderer creates a gofpdf-backed document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the invoice and produces the paginated PDF bytes.
//
// Layout: company block left and upper-cased theme-colored title right;
// bill-to block left and invoice number/date/due-date block right; item
// table in insertion order; right-aligned totals with a tax line only when
// a tax rate is present; notes block only when notes are present.
func (r *Renderer) Render(ctx context.Context, inv *domain.Invoice) ([]byte, error) {
	themeR, themeG, themeB, err := parseHexColor(inv.ThemeColor)
	if err != nil {
		return nil, fmt.Errorf("theme color %q: %w", inv.ThemeColor, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 15.0
	marginY := 15.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*marginX
	halfW := contentW / 2

	// Header: company block on the left, upper-cased title on the right.
	headerY := pdf.GetY()
	pdf.SetFont("Arial", "B", 15)
	pdf.SetTextColor(33, 37, 41)
	pdf.MultiCell(halfW, 7, inv.CompanyName, "", "L", false)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(halfW, 5, inv.CompanyAddress, "", "L", false)
	headerEndY := pdf.GetY()

	pdf.SetXY(marginX+halfW, headerY)
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(themeR, themeG, themeB)
	pdf.CellFormat(halfW, 10, strings.ToUpper(inv.Title), "", 0, "R", false, 0, "")
	pdf.SetTextColor(33, 37, 41)
	if titleEndY := headerY + 10; titleEndY > headerEndY {
		headerEndY = titleEndY
	}
	pdf.SetY(headerEndY + 10)

	// Details row: bill-to block left, invoice details right.
	detailsY := pdf.GetY()
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(halfW, 5, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(halfW, 5, inv.BillToName+"\n"+inv.BillToAddress, "", "L", false)
	detailsEndY := pdf.GetY()

	pdf.SetXY(marginX+halfW, detailsY)
	pdf.SetFont("Arial", "", 10)
	details := []string{
		"Invoice #: " + inv.InvoiceNumber,
		"Date: " + inv.Date,
		"Due Date: " + inv.DueDate,
	}
	for _, line := range details {
		pdf.CellFormat(halfW, 5, line, "", 2, "R", false, 0, "")
	}
	if rightEndY := detailsY + float64(len(details))*5; rightEndY > detailsEndY {
		detailsEndY = rightEndY
	}
	pdf.SetY(detailsEndY + 12)

	// Item table: one header row, then one row per item in original order.
	headers := []string{"Item", "Qty", "Unit Price", "Total"}
	colW := []float64{contentW - 90, 25, 30, 35}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	for i, h := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(colW[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(colW[0], 8, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 8, formatQuantity(it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 8, money(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, money(it.LineTotal()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Totals block, right-aligned. The tax line appears only when a tax rate
	// is present and shows the literal percentage value.
	pdf.Ln(4)
	labelW := contentW - 35
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(labelW, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, money(inv.Subtotal()), "", 1, "R", false, 0, "")

	if inv.TaxRate != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(labelW, 6, fmt.Sprintf("Tax (%s%%):", formatQuantity(*inv.TaxRate)), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, money(inv.TaxAmount()), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(themeR, themeG, themeB)
	pdf.CellFormat(labelW, 8, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, money(inv.Total()), "", 1, "R", false, 0, "")
	pdf.SetTextColor(33, 37, 41)

	// Notes block, only when notes are present.
	if inv.Notes != nil && *inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(contentW, 6, "Notes:", "T", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(contentW, 5, *inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return currencySymbol + strconv.FormatFloat(v, 'f', 2, 64)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseHexColor converts "#RRGGBB" (or the short "#RGB" form) into RGB
// components. The theme color is accepted unvalidated at the API boundary,
// so a value that is not a hex color becomes a rendering fault here.
func parseHexColor(s string) (r, g, b int, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("not a hex color")
	}
	v, perr := strconv.ParseUint(h, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("not a hex color")
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}
