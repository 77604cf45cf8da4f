package mocks

import (
	"context"
	"sync"
)

// NotifyCall records a single Notify invocation.
type NotifyCall struct {
	Excerpt   string
	Questions string
}

// MockNotifier implements notify.Notifier for testing
type MockNotifier struct {
	NotifyFn func(ctx context.Context, excerpt, questions string) error
	Err      error

	mu    sync.Mutex
	calls []NotifyCall
}

// Notify implements the notify.Notifier interface
func (m *MockNotifier) Notify(ctx context.Context, excerpt, questions string) error {
	m.mu.Lock()
	m.calls = append(m.calls, NotifyCall{Excerpt: excerpt, Questions: questions})
	m.mu.Unlock()

	if m.NotifyFn != nil {
		return m.NotifyFn(ctx, excerpt, questions)
	}
	return m.Err
}

// Calls returns every recorded invocation, in call order.
func (m *MockNotifier) Calls() []NotifyCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]NotifyCall(nil), m.calls...)
}
