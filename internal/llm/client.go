package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/model"
)

// Client classifies one PO line item and returns the raw response text.
type Client interface {
	Classify(ctx context.Context, req model.ClassificationRequest) (string, error)
}

// Config holds configuration for the classification client.
type Config struct {
	Provider       string
	APIKey         string
	Model          string
	Endpoint       string
	ClaudeCodePath string
	Temperature    float64
	MaxTokens      int
	Timeout        time.Duration
}

// CollaboratorError reports a failed call to the classification service.
// It matches common.ErrCollaborator with errors.Is.
type CollaboratorError struct {
	Err        error
	Provider   string
	StatusCode int
}

func (e *CollaboratorError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s classification failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s classification failed: %v", e.Provider, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Is makes every CollaboratorError match common.ErrCollaborator.
func (e *CollaboratorError) Is(target error) bool {
	return target == common.ErrCollaborator
}

func collaboratorError(provider string, status int, format string, args ...any) error {
	return &CollaboratorError{
		Provider:   provider,
		StatusCode: status,
		Err:        fmt.Errorf(format, args...),
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
