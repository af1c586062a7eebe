package export

import (
	"context"
	"fmt"
	"strconv"

	"invogen/internal/domain"
	"invogen/internal/port"
)

// Result is one encoded export payload ready to be sent as a download.
type Result struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Dispatcher encodes a validated invoice into one of the supported formats.
// It holds no per-request state; a single Dispatcher serves all requests.
type Dispatcher struct {
	renderer port.DocumentRenderer
}

// NewDispatcher creates a Dispatcher that delegates PDF output to renderer.
func NewDispatcher(renderer port.DocumentRenderer) *Dispatcher {
	return &Dispatcher{renderer: renderer}
}

// Export dispatches to the encoder for the given format. The format tag is
// expected to be validated at the boundary; an unknown tag still fails
// cleanly here.
func (d *Dispatcher) Export(ctx context.Context, inv *domain.Invoice, format domain.ExportFormat) (*Result, error) {
	switch format {
	case domain.FormatJSON:
		return encodeJSON(inv)
	case domain.FormatXML:
		return encodeXML(inv)
	case domain.FormatCSV:
		return encodeCSV(inv)
	case domain.FormatPDF:
		return d.encodePDF(ctx, inv)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
