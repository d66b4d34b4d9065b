package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIAssistant struct {
	client openai.Client
	model  openai.ChatModel
}

// ProcessPrompt implements Assistant.
func (o openAIAssistant) ProcessPrompt(
	ctx context.Context,
	input AssistantInput,
) (*AssistantOutput, error) {
	convertedMsgs := make([]openai.ChatCompletionMessageParamUnion, 0)
	for _, msg := range input.Msgs {
		convertedMsgs = append(convertedMsgs, convertToOpenaiMsg(msg))
	}
	chatCompletion, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: convertedMsgs,
			Model:    o.model,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}
	return &AssistantOutput{
		Id: chatCompletion.ID,
		Response: AssistantMessage{
			Content:   chatCompletion.Choices[0].Message.Content,
			CreatedAt: time.Now(),
			MsgRole:   ASSISTANT,
		},
	}, nil
}

func convertToOpenaiMsg(msg AssistantMessage) openai.ChatCompletionMessageParamUnion {
	switch msg.MsgRole {
	case ASSISTANT:
		return openai.AssistantMessage(msg.Content)
	case USER:
		return openai.UserMessage(msg.Content)
	case SYSTEM:
		return openai.SystemMessage(msg.Content)
	}
	return openai.UserMessage(msg.Content)
}

func NewOpenAIAssistant(apiKey, model string) Assistant {
	chatModel := openai.ChatModel(model)
	if chatModel == "" {
		chatModel = openai.ChatModelGPT4o
	}
	return openAIAssistant{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
		),
		model: chatModel,
	}
}
