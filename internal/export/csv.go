package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"invogen/internal/domain"
)

// columns defines the CSV header row for the line-item export.
var columns = []string{"Description", "Quantity", "Unit Price", "Total"}

// encodeCSV emits the header row followed by one row per line item in
// insertion order. The Total column is computed per row; there is no
// summary or footer row.
func encodeCSV(inv *domain.Invoice) (*Result, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, it := range inv.Items {
		row := []string{
			it.Description,
			formatQuantity(it.Quantity),
			formatMoney(it.UnitPrice),
			formatMoney(it.LineTotal()),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}

	return &Result{
		Data:        buf.Bytes(),
		ContentType: "text/csv",
		Filename:    "invoice_items.csv",
	}, nil
}
