package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for MockProvider. When Err is set
// it wins over Content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays a script of responses in order and keeps every
// request it saw, so pipeline tests can assert on the prompts that were
// sent without touching a network. Running past the end of the script
// reports the provider as unavailable, which doubles as the easiest way
// to simulate an outage.
type MockProvider struct {
	mu     sync.Mutex
	next   int
	script []MockResponse
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.script) {
		return nil, &ErrProviderUnavailable{}
	}
	r := m.script[m.next]
	m.next++

	if r.Err != nil {
		return nil, r.Err
	}
	return &Response{
		Content:    r.Content,
		Usage:      r.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse extends the script.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, r)
}

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
