package routing

import (
	"regexp"
	"strings"
)

// ParsedEntry is one classified piece of a transcript, extracted from the
// classifier reply. Category is lower-cased but not validated here; mapping
// to a handler happens at dispatch time.
type ParsedEntry struct {
	Text     string
	Category string
}

var (
	blankLineRe    = regexp.MustCompile(`\n[ \t]*\n`)
	quotedTextRe   = regexp.MustCompile(`text:\s*"([^"]*)"`)
	unquotedTextRe = regexp.MustCompile(`(?s)text:\s*(.*?)\s*(?:\n\s*tag:|\z)`)
	tagRe          = regexp.MustCompile(`tag:\s*(\w+(?:\s+\w+)*)`)
)

// HasEntryMarkers reports whether a raw string looks like a structured
// classifier reply. This is a cheap gate, not a guarantee: parsing may still
// come up empty for prose that happens to contain both markers.
func HasEntryMarkers(s string) bool {
	return strings.Contains(s, "text:") && strings.Contains(s, "tag:")
}

// ParseEntries extracts text/tag pairs from a classifier reply.
//
// The reply is split on blank lines into blocks. For each block the text
// value is resolved through a fallback ladder: quoted form first
// (text: "..."), then an unquoted form running up to the tag: marker
// (which also covers multi-line values), then a plain line scan. A block
// contributes an entry only when both a non-empty text and a tag were
// found; anything else is dropped silently. Order of the returned slice
// matches appearance order in the input, which the router relies on when
// aligning entries with saved record IDs.
func ParseEntries(response string) []ParsedEntry {
	var entries []ParsedEntry
	for _, block := range splitBlocks(response) {
		tm := tagRe.FindStringSubmatch(block)
		if tm == nil {
			continue
		}
		category := strings.ToLower(strings.TrimSpace(tm[1]))

		text := extractText(block)
		if text == "" || category == "" {
			continue
		}
		entries = append(entries, ParsedEntry{Text: text, Category: category})
	}
	return entries
}

// ParseEntriesLenient is the recovery parser used when ParseEntries finds
// nothing despite the marker gate having fired. It only looks at whole
// lines, which copes with replies where the regex forms are broken.
func ParseEntriesLenient(response string) []ParsedEntry {
	var entries []ParsedEntry
	for _, block := range splitBlocks(response) {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			continue
		}
		var textLine, tagLine string
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "text:") {
				textLine = line
			} else if strings.HasPrefix(line, "tag:") {
				tagLine = line
			}
		}
		if textLine == "" || tagLine == "" {
			continue
		}
		text := stripQuotes(strings.TrimSpace(strings.TrimPrefix(textLine, "text:")))
		category := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tagLine, "tag:")))
		if text == "" || category == "" {
			continue
		}
		entries = append(entries, ParsedEntry{Text: text, Category: category})
	}
	return entries
}

func extractText(block string) string {
	if m := quotedTextRe.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := unquotedTextRe.FindStringSubmatch(block); m != nil {
		if text := stripQuotes(strings.TrimSpace(m[1])); text != "" {
			return text
		}
	}
	return scanText(block)
}

// scanText is the last rung of the ladder: take everything between the
// text: marker and the tag: line, across multiple lines.
func scanText(block string) string {
	lines := strings.Split(block, "\n")
	start, end := -1, len(lines)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start < 0 && strings.Contains(trimmed, "text:") {
			start = i
			continue
		}
		if start >= 0 && strings.HasPrefix(trimmed, "tag:") {
			end = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	collected := strings.Join(lines[start:end], "\n")
	if idx := strings.Index(collected, "text:"); idx >= 0 {
		collected = collected[idx+len("text:"):]
	}
	return stripQuotes(strings.TrimSpace(collected))
}

func splitBlocks(s string) []string {
	var blocks []string
	for _, block := range blankLineRe.Split(s, -1) {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, strings.TrimSpace(block))
		}
	}
	return blocks
}

func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
