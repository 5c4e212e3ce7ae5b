package helix

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// mockCaller records every call and answers with handler
type mockCaller struct {
	mu      sync.Mutex
	calls   []CallOptions
	handler func(opts CallOptions) (string, error)
}

func (m *mockCaller) CallAPI(ctx context.Context, opts CallOptions, out any) error {
	m.mu.Lock()
	m.calls = append(m.calls, opts)
	m.mu.Unlock()

	body, err := m.handler(opts)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(body), out)
}

func (m *mockCaller) Calls() []CallOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CallOptions(nil), m.calls...)
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient("test-client-id", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}
