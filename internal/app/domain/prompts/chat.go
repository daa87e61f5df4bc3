package prompts

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

// BuildChatPrompt wraps a free-text message in the companion persona.
func BuildChatPrompt(req models.ChatRequest) string {
	topic := "general travel"
	if req.Context != nil && strings.TrimSpace(*req.Context) != "" {
		topic = *req.Context
	}

	return fmt.Sprintf(`You are an expert AI Travel Companion for TravelMind.
Context: The user is interested in %s.
User: %s

Provide a helpful, friendly, and expert response. Keep it concise (under 100 words) unless asked for details.`,
		topic, req.Message)
}
