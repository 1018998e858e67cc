package engine

import (
	"context"
	"sync"
	"time"

	"github.com/Veraticus/po-classifier/internal/model"
)

// MockClient is a test implementation of llm.Client. It returns Response
// or Err and records every request it receives.
type MockClient struct {
	Err      error
	Response string
	Delay    time.Duration
	calls    []model.ClassificationRequest
	mu       sync.Mutex
}

// NewMockClient creates a mock that always answers with response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// Classify records req and returns the canned answer.
func (m *MockClient) Classify(ctx context.Context, req model.ClassificationRequest) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	delay, response, err := m.Delay, m.Response, m.Err
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	if err != nil {
		return "", err
	}
	return response, nil
}

// Calls returns the requests received so far.
func (m *MockClient) Calls() []model.ClassificationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]model.ClassificationRequest, len(m.calls))
	copy(calls, m.calls)
	return calls
}
