package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"google.golang.org/api/option"
)

type GeminiAssistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey, modelName string) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.Temperature = &[]float32{0.1}[0]

	return &GeminiAssistant{
		client: client,
		model:  model,
	}, nil
}

// ProcessPrompt implements assistant.Assistant. Gemini takes one prompt
// string, so the message list is flattened before the call.
func (g *GeminiAssistant) ProcessPrompt(
	ctx context.Context,
	input assistant.AssistantInput,
) (*assistant.AssistantOutput, error) {
	var sb strings.Builder
	for _, msg := range input.Msgs {
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n")
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates received")
	}

	var responseText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			responseText += string(textPart)
		}
	}

	return &assistant.AssistantOutput{
		Response: assistant.AssistantMessage{
			Content:   responseText,
			CreatedAt: time.Now(),
			MsgRole:   assistant.ASSISTANT,
		},
	}, nil
}

func (g *GeminiAssistant) Close() error {
	return g.client.Close()
}
