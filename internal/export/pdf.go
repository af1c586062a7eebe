package export

import (
	"context"
	"fmt"

	"invogen/internal/domain"
)

// encodePDF hands layout and rendering to the document renderer. Renderer
// faults (bad theme color, output failure) are surfaced as
// domain.ErrRenderingFailed instead of crashing the request.
func (d *Dispatcher) encodePDF(ctx context.Context, inv *domain.Invoice) (*Result, error) {
	data, err := d.renderer.Render(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderingFailed, err)
	}
	return &Result{
		Data:        data,
		ContentType: "application/pdf",
		Filename:    fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber),
	}, nil
}
