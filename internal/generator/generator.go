package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"invogen/internal/domain"
	"invogen/internal/port"
)

// Service turns a free-text prompt into a validated invoice record using a
// text-completion provider. One round trip per call; no retry, no caching.
type Service struct {
	provider port.TextCompletionProvider
}

// NewService creates a Service backed by the given completion provider.
func NewService(provider port.TextCompletionProvider) *Service {
	return &Service{provider: provider}
}

// Generate asks the provider for placeholder invoice data and validates the
// response against the invoice schema. Provider-level faults surface as
// domain.ErrUpstreamProvider; content that fails to parse or fails schema
// validation surfaces as domain.ErrAIResponseMalformed. A partially
// populated record is never returned.
func (s *Service) Generate(ctx context.Context, prompt string) (*domain.Invoice, error) {
	text, err := s.provider.Complete(ctx, BuildInvoicePrompt(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamProvider, err)
	}

	var inv domain.Invoice
	if err := json.Unmarshal([]byte(text), &inv); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseMalformed, err)
	}
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIResponseMalformed, err)
	}
	return &inv, nil
}
