package ai

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model provider.
type Config struct {
	// Provider: "anthropic", "openai", "gemini", "mock".
	Provider string `yaml:"provider"`

	Anthropic AnthropicConfig `yaml:"anthropic"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Retry     RetryConfig     `yaml:"retry"`

	// Timeout bounds a single request including retries.
	Timeout time.Duration `yaml:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
	// BaseURL overrides the endpoint for OpenAI-compatible gateways.
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// RetryConfig configures the retry decorator.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns the provider defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// FromEnv overlays environment variables onto the config. File config
// loads first; the environment wins.
func (c *Config) FromEnv() {
	if p := os.Getenv("JEEVIBE_AI_PROVIDER"); p != "" {
		c.Provider = p
	}
	if k := os.Getenv("JEEVIBE_ANTHROPIC_API_KEY"); k != "" {
		c.Anthropic.APIKey = k
	}
	if m := os.Getenv("JEEVIBE_ANTHROPIC_MODEL"); m != "" {
		c.Anthropic.Model = m
	}
	if k := os.Getenv("JEEVIBE_OPENAI_API_KEY"); k != "" {
		c.OpenAI.APIKey = k
	}
	if m := os.Getenv("JEEVIBE_OPENAI_MODEL"); m != "" {
		c.OpenAI.Model = m
	}
	if u := os.Getenv("JEEVIBE_OPENAI_BASE_URL"); u != "" {
		c.OpenAI.BaseURL = u
	}
	if k := os.Getenv("JEEVIBE_GEMINI_API_KEY"); k != "" {
		c.Gemini.APIKey = k
	}
	if m := os.Getenv("JEEVIBE_GEMINI_MODEL"); m != "" {
		c.Gemini.Model = m
	}
}

// Validate checks that the selected provider has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("JEEVIBE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("JEEVIBE_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("JEEVIBE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown AI provider: %q", c.Provider)
	}
	return nil
}
