package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the OpenAI API client. It is safe for concurrent use.
type Client struct {
	apiKey             string
	apiURL             string
	chatModel          string
	transcriptionModel string
	httpClient         *http.Client
}

// NewClient creates a new OpenAI API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:             apiKey,
		apiURL:             DefaultAPIURL,
		chatModel:          DefaultChatModel,
		transcriptionModel: DefaultTranscriptionModel,
		httpClient:         &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API base URL. Used by tests to point the client
// at a local httptest server.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetChatModel overrides the default chat completion model.
func (c *Client) SetChatModel(model string) {
	if model != "" {
		c.chatModel = model
	}
}

// SetTranscriptionModel overrides the default speech-to-text model.
func (c *Client) SetTranscriptionModel(model string) {
	if model != "" {
		c.transcriptionModel = model
	}
}

// CreateChatCompletion sends a chat completion request to the OpenAI API.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if req.Model == "" {
		req.Model = c.chatModel
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return &result, nil
}
