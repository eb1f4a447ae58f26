package services

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// Fixed sampling parameters, not user-configurable.
const (
	geminiTemperature     float32 = 0.2
	geminiMaxOutputTokens int32   = 2048
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	apiKey    string
	modelName string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiService does not dial anything; the client is created lazily on
// the first call so a missing credential surfaces as a per-request upstream
// failure instead of a startup crash.
func NewGeminiService(apiKey, modelName string) GeminiService {
	return &geminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

func (g *geminiService) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	g.client = client
	return client, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	temperature := geminiTemperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: geminiMaxOutputTokens,
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", nil
	}

	return resp.Text(), nil
}
