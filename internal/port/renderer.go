package port

import (
	"context"

	"invogen/internal/domain"
)

// DocumentRenderer lays out an invoice and converts it into a paginated
// binary document.
type DocumentRenderer interface {
	Render(ctx context.Context, inv *domain.Invoice) ([]byte, error)
}
