package generator

import (
	"fmt"

	"invogen/internal/config"
	"invogen/internal/port"
)

// ProviderFactory is a function that creates a TextCompletionProvider from a
// provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.TextCompletionProvider, error)

// registry of completion provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider creates a TextCompletionProvider from a provider config using
// the registered factory.
func NewProvider(cfg *config.ProviderConfig) (port.TextCompletionProvider, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
