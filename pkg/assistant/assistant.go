package assistant

import (
	"context"
	"time"
)

func NewAssistantInput(msgs []AssistantMessage) AssistantInput {
	return AssistantInput{
		Msgs: msgs,
	}
}

// Ask is the one-shot helper used by the extraction services: a system
// instruction plus one user message, plain string back.
func Ask(ctx context.Context, a Assistant, system, user string) (string, error) {
	now := time.Now()
	input := NewAssistantInput([]AssistantMessage{
		{Content: system, CreatedAt: now, MsgRole: SYSTEM},
		{Content: user, CreatedAt: now, MsgRole: USER},
	})
	out, err := a.ProcessPrompt(ctx, input)
	if err != nil {
		return "", err
	}
	return out.Response.Content, nil
}
