package accounts

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var incomeKeywords = []string{
	"received", "earned", "income", "salary", "wage", "payment", "paid me",
	"deposit", "revenue", "profit", "bonus", "dividend", "interest",
	"refund", "reimbursement", "credit", "gain", "earning",
}

var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"€", "EUR"},
	{"$", "USD"},
	{"£", "GBP"},
	{"¥", "JPY"},
}

var currencyCodes = []string{"EUR", "USD", "GBP", "JPY", "CHF"}

const defaultCurrency = "EUR"

var amountRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)

func detectEntryType(text string) string {
	lowered := strings.ToLower(text)
	for _, keyword := range incomeKeywords {
		re := regexp.MustCompile(`\b` + keyword + `\b`)
		if re.MatchString(lowered) {
			return EntryTypeIncome
		}
	}
	return EntryTypeExpense
}

// extractAmountAndCurrency looks for a currency symbol or code next to a
// number, in either order, then falls back to any bare number with the
// default currency. Decimal commas are accepted.
func extractAmountAndCurrency(text string) (float64, string, bool) {
	for _, cur := range currencySymbols {
		sym := regexp.QuoteMeta(cur.symbol)
		for _, pattern := range []string{
			sym + `\s*(\d+(?:[.,]\d+)?)`,
			`(\d+(?:[.,]\d+)?)\s*` + sym,
		} {
			if m := regexp.MustCompile(pattern).FindStringSubmatch(text); m != nil {
				return parseAmount(m[1]), cur.code, true
			}
		}
	}

	for _, code := range currencyCodes {
		for _, pattern := range []string{
			`(?i)(\d+(?:[.,]\d+)?)\s*` + code,
			`(?i)` + code + `\s*(\d+(?:[.,]\d+)?)`,
		} {
			if m := regexp.MustCompile(pattern).FindStringSubmatch(text); m != nil {
				return parseAmount(m[1]), code, true
			}
		}
	}

	if m := amountRe.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1]), defaultCurrency, true
	}
	return 0, defaultCurrency, false
}

func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return v
}

var numericDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})[/.-](\d{1,2})[/.-](\d{1,2})`),   // YYYY/MM/DD
	regexp.MustCompile(`(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})`), // MM/DD/YYYY
}

// extractDate picks up "today" or a numeric date; nil means the store's
// default timestamp applies.
func extractDate(text string, now time.Time) *time.Time {
	if regexp.MustCompile(`\btoday\b`).MatchString(strings.ToLower(text)) {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &today
	}

	for i, re := range numericDateRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var year, month, day int
		if i == 0 {
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		} else {
			month, _ = strconv.Atoi(m[1])
			day, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		return &d
	}
	return nil
}
