package ai

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates a truncated response.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}
