package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasEntryMarkers(t *testing.T) {
	assert.True(t, HasEntryMarkers("text: \"a\"\ntag: diary"))
	assert.False(t, HasEntryMarkers("text: something without the other marker"))
	assert.False(t, HasEntryMarkers("tag: diary"))
	assert.False(t, HasEntryMarkers("plain prose"))
}

func TestParseEntries_SingleQuoted(t *testing.T) {
	entries := ParseEntries("text: \"Buy milk tomorrow\"\ntag: to_do")
	require.Len(t, entries, 1)
	assert.Equal(t, "Buy milk tomorrow", entries[0].Text)
	assert.Equal(t, "to_do", entries[0].Category)
}

func TestParseEntries_MultipleBlocks(t *testing.T) {
	reply := "text: \"Had a rough day at work\"\n" +
		"tag: diary\n" +
		"\n" +
		"text: \"Dentist appointment Friday at 3pm\"\n" +
		"tag: calendar\n" +
		"\n" +
		"text: \"Spent 40 euros on groceries\"\n" +
		"tag: accounts"

	entries := ParseEntries(reply)
	require.Len(t, entries, 3)
	assert.Equal(t, "diary", entries[0].Category)
	assert.Equal(t, "calendar", entries[1].Category)
	assert.Equal(t, "accounts", entries[2].Category)
	assert.Equal(t, "Had a rough day at work", entries[0].Text)
}

func TestParseEntries_UnquotedText(t *testing.T) {
	entries := ParseEntries("text: call the plumber about the leak\ntag: to_do")
	require.Len(t, entries, 1)
	assert.Equal(t, "call the plumber about the leak", entries[0].Text)
	assert.Equal(t, "to_do", entries[0].Category)
}

func TestParseEntries_MultilineUnquotedText(t *testing.T) {
	reply := "text: first line of the thought\n" +
		"which continues on a second line\n" +
		"tag: diary"
	entries := ParseEntries(reply)
	require.Len(t, entries, 1)
	assert.Equal(t, "first line of the thought\nwhich continues on a second line", entries[0].Text)
}

func TestParseEntries_CategoryNormalized(t *testing.T) {
	entries := ParseEntries("text: \"note\"\ntag: Diary")
	require.Len(t, entries, 1)
	assert.Equal(t, "diary", entries[0].Category)
}

func TestParseEntries_MultiWordTag(t *testing.T) {
	entries := ParseEntries("text: \"pick up the parcel\"\ntag: to do")
	require.Len(t, entries, 1)
	assert.Equal(t, "to do", entries[0].Category)
}

func TestParseEntries_BlockMissingTagDropped(t *testing.T) {
	reply := "text: \"orphaned entry\"\n" +
		"\n" +
		"text: \"kept entry\"\n" +
		"tag: diary"
	entries := ParseEntries(reply)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept entry", entries[0].Text)
}

func TestParseEntries_EmptyTextDropped(t *testing.T) {
	entries := ParseEntries("text: \"\"\ntag: diary")
	assert.Empty(t, entries)
}

func TestParseEntries_NoMarkers(t *testing.T) {
	assert.Empty(t, ParseEntries("just an ordinary sentence"))
}

func TestParseEntries_TwoEntryReply(t *testing.T) {
	reply := "text: \"Buy milk\"\ntag: to_do\n\ntext: \"Meet Bob at 3pm\"\ntag: calendar"
	entries := ParseEntries(reply)
	require.Len(t, entries, 2)
	assert.Equal(t, ParsedEntry{Text: "Buy milk", Category: "to_do"}, entries[0])
	assert.Equal(t, ParsedEntry{Text: "Meet Bob at 3pm", Category: "calendar"}, entries[1])
}

func TestParseEntries_OrderPreserved(t *testing.T) {
	reply := "text: \"one\"\ntag: diary\n\ntext: \"two\"\ntag: to_do\n\ntext: \"three\"\ntag: contacts"
	entries := ParseEntries(reply)
	require.Len(t, entries, 3)
	assert.Equal(t, "one", entries[0].Text)
	assert.Equal(t, "two", entries[1].Text)
	assert.Equal(t, "three", entries[2].Text)
}

func TestParseEntries_Idempotent(t *testing.T) {
	reply := "text: \"repeat me\"\ntag: diary\n\ntext: \"and me\"\ntag: accounts"
	first := ParseEntries(reply)
	second := ParseEntries(reply)
	assert.Equal(t, first, second)
}

func TestParseEntriesLenient_RecoversBrokenQuoting(t *testing.T) {
	// Stray quote breaks the strict quoted form; lenient line scan copes.
	reply := "text: she said \"hello\n" + "tag: diary"
	entries := ParseEntriesLenient(reply)
	require.Len(t, entries, 1)
	assert.Equal(t, "she said \"hello", entries[0].Text)
	assert.Equal(t, "diary", entries[0].Category)
}

func TestParseEntriesLenient_SingleLineBlockSkipped(t *testing.T) {
	assert.Empty(t, ParseEntriesLenient("text: \"a\" tag: diary"))
}

func TestParseEntriesLenient_StripsQuotes(t *testing.T) {
	entries := ParseEntriesLenient("text: \"quoted value\"\ntag: to_do")
	require.Len(t, entries, 1)
	assert.Equal(t, "quoted value", entries[0].Text)
}

func TestSplitBlocks_IgnoresExtraBlankLines(t *testing.T) {
	blocks := splitBlocks("a\n\n\n\nb\n \nc")
	assert.Equal(t, []string{"a", "b", "c"}, blocks)
}

func TestTruncateText(t *testing.T) {
	long := "this sentence keeps going well past the fifty character preview limit"
	got := truncateText(long)
	assert.Equal(t, long[:50]+"...", got)
	assert.Equal(t, "short", truncateText("short"))
}
