package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/VisheshVarshney/MUJConnect/internal/chat"
)

const defaultAPIURL = "https://api.openai.com/v1/chat/completions"

// Client is a classifier backed by an OpenAI-compatible chat completions
// endpoint, which also covers locally hosted models speaking the same API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
}

// NewClient creates a new client. An empty apiURL targets the OpenAI API.
func NewClient(apiURL, apiKey, model string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		httpClient: &http.Client{},
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// Request represents the request body for the chat completions endpoint.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Message represents a message in the request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response represents the response from the chat completions endpoint.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Choice represents a choice in the response.
type Choice struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage represents a message in the response.
type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Classify sends the classification instruction and the user message and
// returns the model's raw text output.
func (c *Client) Classify(ctx context.Context, message string) (string, error) {
	reqBody := Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: chat.Instruction},
			{Role: "user", Content: message},
		},
		Temperature: 0.2,
		MaxTokens:   150,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions request failed with status %d", resp.StatusCode)
	}

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from chat completions endpoint")
	}

	return response.Choices[0].Message.Content, nil
}
