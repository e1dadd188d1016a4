package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the configured provider wrapped with logging and
// retry middleware: caller -> retry -> logging -> base.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, log)
	return WithRetry(logged, cfg.Retry), nil
}
