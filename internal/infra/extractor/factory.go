package extractor

import (
	"fmt"
	"os"
	"strings"
)

// Provider names accepted by NewFromEnv.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderNoop   = "noop"
)

// NewFromEnv builds an EventExtractor based on the EXTRACTOR_PROVIDER
// environment variable. Unset defaults to claude. The matching API key
// variable (ANTHROPIC_API_KEY or OPENAI_API_KEY) may be empty here; the
// key is validated on first Extract call so startup never blocks on
// credentials.
func NewFromEnv() (EventExtractor, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("EXTRACTOR_PROVIDER")))
	if provider == "" {
		provider = ProviderClaude
	}

	switch provider {
	case ProviderClaude:
		return NewClaude(os.Getenv("ANTHROPIC_API_KEY")), nil
	case ProviderOpenAI:
		return NewOpenAI(os.Getenv("OPENAI_API_KEY")), nil
	case ProviderNoop:
		return NewNoop(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
