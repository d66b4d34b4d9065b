package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestExtract_BareJSON(t *testing.T) {
	var s sample
	err := Extract(`{"name": "milk", "count": 2}`, &s)
	assert.Nil(t, err)
	assert.Equal(t, "milk", s.Name)
	assert.Equal(t, 2, s.Count)
}

func TestExtract_FencedBlock(t *testing.T) {
	var s sample
	err := Extract("Here is the result:\n```json\n{\"name\": \"milk\"}\n```\nDone.", &s)
	assert.Nil(t, err)
	assert.Equal(t, "milk", s.Name)
}

func TestExtract_FencedBlockNoLanguage(t *testing.T) {
	var s sample
	err := Extract("```\n{\"name\": \"eggs\"}\n```", &s)
	assert.Nil(t, err)
	assert.Equal(t, "eggs", s.Name)
}

func TestExtract_BracesInProse(t *testing.T) {
	var s sample
	err := Extract(`Sure! The extracted data is {"name": "bread", "count": 1} as requested.`, &s)
	assert.Nil(t, err)
	assert.Equal(t, "bread", s.Name)
}

func TestExtract_NoJSON(t *testing.T) {
	var s sample
	err := Extract("there is nothing structured here", &s)
	assert.Equal(t, ErrNoJSON, err)
}

func TestExtract_Empty(t *testing.T) {
	var s sample
	err := Extract("   ", &s)
	assert.Equal(t, ErrNoJSON, err)
}
