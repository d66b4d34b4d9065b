package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEntryType_Income(t *testing.T) {
	assert.Equal(t, EntryTypeIncome, detectEntryType("I received 200 euros from the client"))
	assert.Equal(t, EntryTypeIncome, detectEntryType("salary came in today"))
	assert.Equal(t, EntryTypeIncome, detectEntryType("got a refund for the broken blender"))
}

func TestDetectEntryType_DefaultExpense(t *testing.T) {
	assert.Equal(t, EntryTypeExpense, detectEntryType("spent 30 on groceries"))
}

func TestDetectEntryType_WholeWordOnly(t *testing.T) {
	// "gain" inside "against" must not trigger income.
	assert.Equal(t, EntryTypeExpense, detectEntryType("bet 10 against the house"))
}

func TestExtractAmount_SymbolBefore(t *testing.T) {
	amount, currency, ok := extractAmountAndCurrency("paid €50.25 for dinner")
	require.True(t, ok)
	assert.Equal(t, 50.25, amount)
	assert.Equal(t, "EUR", currency)
}

func TestExtractAmount_SymbolAfter(t *testing.T) {
	amount, currency, ok := extractAmountAndCurrency("dinner was 50,25€ tonight")
	require.True(t, ok)
	assert.Equal(t, 50.25, amount)
	assert.Equal(t, "EUR", currency)
}

func TestExtractAmount_DollarSymbol(t *testing.T) {
	amount, currency, ok := extractAmountAndCurrency("bought a book for $12")
	require.True(t, ok)
	assert.Equal(t, 12.0, amount)
	assert.Equal(t, "USD", currency)
}

func TestExtractAmount_CodeAfterNumber(t *testing.T) {
	amount, currency, ok := extractAmountAndCurrency("transferred 300 CHF to savings")
	require.True(t, ok)
	assert.Equal(t, 300.0, amount)
	assert.Equal(t, "CHF", currency)
}

func TestExtractAmount_BareNumberDefaultsEUR(t *testing.T) {
	amount, currency, ok := extractAmountAndCurrency("groceries were 42 at the market")
	require.True(t, ok)
	assert.Equal(t, 42.0, amount)
	assert.Equal(t, "EUR", currency)
}

func TestExtractAmount_NoNumber(t *testing.T) {
	_, _, ok := extractAmountAndCurrency("bought some groceries")
	assert.False(t, ok)
}

func TestExtractDate_Today(t *testing.T) {
	now := time.Date(2025, 4, 16, 14, 30, 0, 0, time.UTC)
	d := extractDate("paid the rent today", now)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC), *d)
}

func TestExtractDate_NumericISO(t *testing.T) {
	now := time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)
	d := extractDate("invoice dated 2025-03-02 arrived", now)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), *d)
}

func TestExtractDate_NumericUS(t *testing.T) {
	now := time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)
	d := extractDate("paid on 3/14/25", now)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *d)
}

func TestExtractDate_None(t *testing.T) {
	now := time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, extractDate("paid the rent", now))
}
