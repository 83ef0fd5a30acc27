// Package gemini implements llm.Client on top of the Google GenAI API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mrEkso/n8n-voice2action-telegram/llm"
)

const defaultModel = "gemini-1.5-flash"

type Client struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, req llm.Request) (llm.Result, error) {
	if c == nil || c.client == nil {
		return llm.Result{}, fmt.Errorf("nil gemini client")
	}
	if len(req.Parts) == 0 {
		return llm.Result{}, fmt.Errorf("empty request")
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.model
	}

	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if len(p.Data) > 0 {
			parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIME))
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	start := time.Now()
	res, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return llm.Result{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return llm.Result{}, fmt.Errorf("empty gemini response")
	}
	return llm.Result{Text: text, Duration: time.Since(start)}, nil
}
