package ollama

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/presbrey/ollamafarm"
	"github.com/xpanvictor/jassist/pkg/assistant"
)

// OllamaAssistant picks the first online server from the farm for each call.
type OllamaAssistant struct {
	ollamafarm *ollamafarm.Farm
	model      string
}

func New(urls []string, model string) (*OllamaAssistant, error) {
	farm := ollamafarm.New()

	for _, u := range urls {
		if err := farm.RegisterURL(u, nil); err != nil {
			return nil, fmt.Errorf("failed to register ollama server %s: %w", u, err)
		}
	}

	return &OllamaAssistant{
		ollamafarm: farm,
		model:      model,
	}, nil
}

// ProcessPrompt implements assistant.Assistant.
func (o *OllamaAssistant) ProcessPrompt(
	ctx context.Context,
	input assistant.AssistantInput,
) (*assistant.AssistantOutput, error) {
	client := o.ollamafarm.First(&ollamafarm.Where{Offline: false})
	if client == nil {
		return nil, fmt.Errorf("no ollama server online for model %s", o.model)
	}

	msgs := make([]api.Message, 0, len(input.Msgs))
	for _, msg := range input.Msgs {
		msgs = append(msgs, api.Message{
			Role:    string(msg.MsgRole),
			Content: msg.Content,
		})
	}

	stream := false
	var sb strings.Builder
	err := client.Client().Chat(ctx, &api.ChatRequest{
		Model:    o.model,
		Messages: msgs,
		Stream:   &stream,
	}, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat failed: %w", err)
	}

	return &assistant.AssistantOutput{
		Response: assistant.AssistantMessage{
			Content:   sb.String(),
			CreatedAt: time.Now(),
			MsgRole:   assistant.ASSISTANT,
		},
	}, nil
}
