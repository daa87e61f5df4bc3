package completion

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	generativeAI "github.com/FACorreiaa/go-genai-sdk/lib"
	"google.golang.org/genai"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

var errEmptyCompletion = errors.New("provider returned no content")

// chatClient is the part of the genai SDK client the provider needs.
type chatClient interface {
	GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider talks to the Gemini API through the go-genai-sdk chat client.
type GeminiProvider struct {
	client chatClient
	model  string
}

// NewGeminiProvider builds a Gemini-backed provider. The SDK reads its model
// name from the -model flag, so a non-empty model is applied there first.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, models.ErrProviderUnavailable
	}
	if model != "" {
		if err := flag.Set("model", model); err != nil {
			return nil, fmt.Errorf("set gemini model: %w", err)
		}
	}

	client, err := generativeAI.NewLLMChatClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: client.ModelName}, nil
}

func (p *GeminiProvider) Name() string  { return "gemini" }
func (p *GeminiProvider) Model() string { return p.model }

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSONMode {
		config.ResponseMIMEType = "application/json"
	}

	response, err := p.client.GenerateResponse(ctx, req.Prompt, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if response == nil {
		return "", errEmptyCompletion
	}

	var b strings.Builder
	for _, candidate := range response.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
		break
	}
	if b.Len() == 0 {
		return "", errEmptyCompletion
	}

	return b.String(), nil
}
