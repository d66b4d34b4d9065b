package todo

import (
	"regexp"
	"strings"
	"time"
)

var duePatterns = []*regexp.Regexp{
	regexp.MustCompile(`by\s+(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`due\s+(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`on\s+(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var highPriorityTerms = []string{"urgent", "important", "critical", "high priority"}
var lowPriorityTerms = []string{"low priority", "when you can", "not urgent"}

// extractDueDate scans for simple "by/due/on <day>" phrases. A named
// weekday always resolves to a future date; if today is that weekday the
// task lands on next week's occurrence.
func extractDueDate(text string, now time.Time) *time.Time {
	lowered := strings.ToLower(text)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, p := range duePatterns {
		m := p.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		switch term := m[1]; term {
		case "today":
			return &today
		case "tomorrow":
			due := today.AddDate(0, 0, 1)
			return &due
		default:
			target := weekdays[term]
			daysUntil := (int(target) - int(today.Weekday()) + 7) % 7
			if daysUntil == 0 {
				daysUntil = 7
			}
			due := today.AddDate(0, 0, daysUntil)
			return &due
		}
	}
	return nil
}

// extractPriority checks low-priority phrases first so that "not urgent"
// is not swallowed by the "urgent" keyword.
func extractPriority(text string) string {
	lowered := strings.ToLower(text)
	for _, term := range lowPriorityTerms {
		if strings.Contains(lowered, term) {
			return PriorityLow
		}
	}
	for _, term := range highPriorityTerms {
		if strings.Contains(lowered, term) {
			return PriorityHigh
		}
	}
	return PriorityMedium
}
