// Package ai wraps the LLM providers behind one interface. The engine uses
// it for snap-solve explanations, generated follow-up questions when the
// catalog runs dry, and the tutor chat.
package ai

import (
	"context"
	"encoding/json"
)

// Provider is the LLM abstraction. Callers send a Request and receive
// structured JSON when a Schema is set, raw text otherwise.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Most engine calls are
	// single-turn with one user message; the tutor sends history.
	Messages []Message

	// Schema, when set, forces structured JSON output conforming to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure the model must return.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
