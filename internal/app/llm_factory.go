package app

import (
	"context"
	"fmt"

	"github.com/xpanvictor/jassist/internal/config"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"github.com/xpanvictor/jassist/pkg/assistant/providers/gemini"
	"github.com/xpanvictor/jassist/pkg/assistant/providers/ollama"
)

// NewAssistant builds the configured LLM provider. One assistant instance
// serves both classification and the per-category extractors.
func NewAssistant(ctx context.Context, cfg config.AssistantConfig) (assistant.Assistant, error) {
	switch cfg.Provider {
	case "openai", "":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider selected but open_ai_api_key is empty")
		}
		return assistant.NewOpenAIAssistant(cfg.OpenAIAPIKey, cfg.Model), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider selected but gemini_api_key is empty")
		}
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.Model)
	case "ollama":
		if len(cfg.OllamaURLs) == 0 {
			return nil, fmt.Errorf("ollama provider selected but ollama_urls is empty")
		}
		return ollama.New(cfg.OllamaURLs, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown assistant provider %q", cfg.Provider)
	}
}
