package classify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
)

const classifyPrompt = "You sort a spoken diary transcription into categories. " +
	"The transcription may contain several unrelated thoughts; split it into " +
	"separate entries where the topic changes. The categories are: diary, " +
	"calendar, to_do, accounts, contacts, entities.\n\n" +
	"diary: personal reflections, feelings, things that happened\n" +
	"calendar: appointments, meetings, anything with a date and time to attend\n" +
	"to_do: tasks and errands the speaker intends to do\n" +
	"accounts: money spent, received or owed\n" +
	"contacts: details about a person (name, phone, email)\n" +
	"entities: projects, places or organizations worth tracking\n\n" +
	"Reply with one block per entry, blocks separated by a blank line, each " +
	"block in exactly this format:\n" +
	"text: \"the entry text\"\n" +
	"tag: category\n\n" +
	"Use the entry's own words in text. Never invent content."

// ResponseCache stores classification replies keyed by transcription
// content, so re-running the pipeline over old files stays cheap.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

type Service interface {
	Classify(ctx context.Context, text string) (string, error)
}

type classifyService struct {
	classifier assistant.Assistant
	cache      ResponseCache
	logger     *Logger.Logger
}

// NewService builds the classifier. cache may be nil; every call then
// goes to the model.
func NewService(classifier assistant.Assistant, cache ResponseCache, logger *Logger.Logger) Service {
	return &classifyService{
		classifier: classifier,
		cache:      cache,
		logger:     logger,
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "jassist:classify:" + hex.EncodeToString(sum[:])
}

// Classify returns the model's text/tag block response for a
// transcription, consulting the cache first.
func (s *classifyService) Classify(ctx context.Context, text string) (string, error) {
	key := cacheKey(text)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.logger.Debugf("classification cache hit for key %s", key)
			return cached, nil
		}
	}

	start := time.Now()
	reply, err := assistant.Ask(ctx, s.classifier, classifyPrompt, text)
	if err != nil {
		return "", fmt.Errorf("classification failed: %w", err)
	}
	s.logger.Infof("classified transcription in %s", time.Since(start).Round(time.Millisecond))

	if s.cache != nil {
		s.cache.Set(ctx, key, reply)
	}
	return reply, nil
}
