package mail

import (
	"context"
	"errors"
	"sync"
)

// MockMailer is a Mailer for tests. It records every message it is asked to
// send and answers with SendFunc when set.
type MockMailer struct {
	SendFunc func(ctx context.Context, msg *Message) (int, error)

	mu   sync.Mutex
	sent []*Message
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, msg *Message) (int, error) {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return 0, errors.New("Send not implemented in mock")
}

// Sent returns the messages passed to Send, in call order.
func (m *MockMailer) Sent() []*Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Message(nil), m.sent...)
}

func (m *MockMailer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
