package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/Veraticus/po-classifier/internal/model"
)

// claudeCodeClient implements the Client interface using the Claude Code CLI.
type claudeCodeClient struct {
	cliPath  string
	model    string
	timeout  time.Duration
	maxTurns int
}

// newClaudeCodeClient creates a new Claude Code CLI client.
func newClaudeCodeClient(cfg Config) (Client, error) {
	cliPath := cfg.ClaudeCodePath
	if cliPath == "" {
		cliPath = "claude"
	}

	if _, err := exec.LookPath(cliPath); err != nil {
		return nil, fmt.Errorf("claude CLI not found at %s: ensure @anthropic-ai/claude-code is installed", cliPath)
	}

	model := cfg.Model
	if model == "" {
		model = "sonnet"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &claudeCodeClient{
		cliPath:  cliPath,
		model:    model,
		timeout:  timeout,
		maxTurns: 1,
	}, nil
}

// Classify runs the CLI once and returns its result text verbatim. If the
// CLI output is not its JSON envelope, stdout is returned as is.
func (c *claudeCodeClient) Classify(ctx context.Context, req model.ClassificationRequest) (string, error) {
	fullPrompt := systemPrompt + "\n\n" + BuildPrompt(req)

	args := []string{
		"-p", fullPrompt,
		"--output-format", "json",
		"--model", c.model,
		"--max-turns", strconv.Itoa(c.maxTurns),
	}

	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(cmdCtx, c.cliPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", collaboratorError("claudecode", 0, "claude code error: %s", stderr.String())
		}
		return "", collaboratorError("claudecode", 0, "failed to execute claude: %w", err)
	}

	var response claudeCodeResponse
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return stdout.String(), nil
	}

	if response.IsError {
		return "", collaboratorError("claudecode", 0, "claude code reported an error: %s", response.Result)
	}

	return response.Result, nil
}

// claudeCodeResponse represents the JSON response from Claude Code CLI.
type claudeCodeResponse struct {
	Result    string  `json:"result"`
	Type      string  `json:"type"`
	SessionID string  `json:"session_id"`
	IsError   bool    `json:"is_error"`
	TotalCost float64 `json:"total_cost_usd"`
}
