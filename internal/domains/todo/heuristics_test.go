package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var testNow = time.Date(2025, 4, 16, 14, 30, 0, 0, time.UTC)

func TestExtractDueDate_Today(t *testing.T) {
	due := extractDueDate("finish the report by today", testNow)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC), *due)
}

func TestExtractDueDate_Tomorrow(t *testing.T) {
	due := extractDueDate("pay the bill due tomorrow", testNow)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC), *due)
}

func TestExtractDueDate_Weekday(t *testing.T) {
	due := extractDueDate("call the dentist on friday", testNow)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC), *due)
}

func TestExtractDueDate_SameWeekdayGoesToNextWeek(t *testing.T) {
	due := extractDueDate("submit taxes by wednesday", testNow)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC), *due)
}

func TestExtractDueDate_NoDate(t *testing.T) {
	assert.Nil(t, extractDueDate("buy milk", testNow))
}

func TestExtractPriority_High(t *testing.T) {
	assert.Equal(t, PriorityHigh, extractPriority("URGENT: renew the passport"))
	assert.Equal(t, PriorityHigh, extractPriority("this is high priority stuff"))
}

func TestExtractPriority_Low(t *testing.T) {
	assert.Equal(t, PriorityLow, extractPriority("tidy the garage when you can"))
	assert.Equal(t, PriorityLow, extractPriority("not urgent, just a reminder"))
}

func TestExtractPriority_Default(t *testing.T) {
	assert.Equal(t, PriorityMedium, extractPriority("buy milk"))
}
