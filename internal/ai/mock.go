package ai

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider returns canned responses in FIFO order and records all
// requests. The default queue is empty, which surfaces as provider
// unavailable; tests seed it with AddResponse.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}
