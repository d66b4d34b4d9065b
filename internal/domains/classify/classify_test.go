package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
)

type fakeAssistant struct {
	reply string
	err   error
	calls int
}

func (f *fakeAssistant) ProcessPrompt(ctx context.Context, input assistant.AssistantInput) (*assistant.AssistantOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &assistant.AssistantOutput{
		Response: assistant.AssistantMessage{Content: f.reply, MsgRole: assistant.ASSISTANT},
	}, nil
}

type mapCache struct {
	data map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string]string{}}
}

func (m *mapCache) Get(ctx context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mapCache) Set(ctx context.Context, key string, value string) {
	m.data[key] = value
}

func TestClassify_ReturnsModelReply(t *testing.T) {
	model := &fakeAssistant{reply: "text: \"bought bread\"\ntag: accounts"}
	svc := NewService(model, nil, Logger.Noop())

	got, err := svc.Classify(context.Background(), "bought bread for two euros")
	require.NoError(t, err)
	assert.Equal(t, model.reply, got)
	assert.Equal(t, 1, model.calls)
}

func TestClassify_CacheHitSkipsModel(t *testing.T) {
	model := &fakeAssistant{reply: "text: \"note\"\ntag: diary"}
	cache := newMapCache()
	svc := NewService(model, cache, Logger.Noop())

	first, err := svc.Classify(context.Background(), "same content")
	require.NoError(t, err)
	second, err := svc.Classify(context.Background(), "same content")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, model.calls)
}

func TestClassify_DifferentContentMisses(t *testing.T) {
	model := &fakeAssistant{reply: "text: \"note\"\ntag: diary"}
	cache := newMapCache()
	svc := NewService(model, cache, Logger.Noop())

	_, err := svc.Classify(context.Background(), "first note")
	require.NoError(t, err)
	_, err = svc.Classify(context.Background(), "second note")
	require.NoError(t, err)

	assert.Equal(t, 2, model.calls)
}

func TestClassify_ModelError(t *testing.T) {
	model := &fakeAssistant{err: errors.New("model offline")}
	svc := NewService(model, newMapCache(), Logger.Noop())

	_, err := svc.Classify(context.Background(), "anything")
	assert.Error(t, err)
}
