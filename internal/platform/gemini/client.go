package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/VisheshVarshney/MUJConnect/internal/chat"
)

// Client is a classifier backed by the Gemini API.
type Client struct {
	model *genai.GenerativeModel
}

// NewClient creates a new Gemini client with the fixed classification
// instruction installed as the system prompt.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	m := client.GenerativeModel(model)
	// Low temperature keeps the output close to the demanded JSON shape.
	m.SetTemperature(0.2)
	m.SetMaxOutputTokens(150)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chat.Instruction)},
	}

	return &Client{model: m}, nil
}

// Classify sends the user message to Gemini and returns the model's raw
// text output. Parsing and validation happen at the chat boundary.
func (c *Client) Classify(ctx context.Context, message string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	return string(text), nil
}
