package jsonx

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrNoJSON means no parseable object was found anywhere in the text.
	ErrNoJSON = errors.New("no JSON object found in text")

	fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	curlySpanRe   = regexp.MustCompile(`(?s)(\{.*\})`)
)

// Extract pulls a JSON object out of an LLM reply and unmarshals it into
// out. Replies come back in several shapes: bare JSON, a fenced ```json
// block, or JSON buried in prose; each form is tried in turn.
func Extract(text string, out interface{}) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}

	for _, m := range fencedBlockRe.FindAllStringSubmatch(text, -1) {
		if err := json.Unmarshal([]byte(m[1]), out); err == nil {
			return nil
		}
	}

	if m := curlySpanRe.FindStringSubmatch(text); m != nil {
		if err := json.Unmarshal([]byte(m[1]), out); err == nil {
			return nil
		}
	}

	return ErrNoJSON
}
