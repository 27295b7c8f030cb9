package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

var ErrNoSuggestion = errors.New("no usable suggestion")

// ModelSettings selects the provider model for one request.
type ModelSettings struct {
	Model       string
	Temperature float64
}

// Suggester fetches an advisory move from an external text generator.
type Suggester interface {
	Suggest(ctx context.Context, board domain.Board, mover domain.Side, model ModelSettings) (domain.Move, error)
}

// Client talks to a chat-completion style endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client. httpClient may already carry credentials (for
// example an OAuth2 client); apiKey is sent as a bearer token otherwise.
func NewClient(endpoint, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, apiKey: apiKey, httpClient: httpClient}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Suggest(ctx context.Context, board domain.Board, mover domain.Side, model ModelSettings) (domain.Move, error) {
	body, err := json.Marshal(chatRequest{
		Model: model.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(board, mover)},
		},
		Temperature: model.Temperature,
	})
	if err != nil {
		return domain.Move{}, fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Move{}, fmt.Errorf("failed to build suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Move{}, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return domain.Move{}, fmt.Errorf("suggestion provider returned %d: %s", resp.StatusCode, snippet)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Move{}, fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return domain.Move{}, ErrNoSuggestion
	}

	move, ok := ParseMove(out.Choices[0].Message.Content)
	if !ok {
		return domain.Move{}, ErrNoSuggestion
	}
	return move, nil
}
