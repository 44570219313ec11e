package timephrase

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	RuleInMinutes = "in_minutes"
	RuleInHours   = "in_hours"
	RuleAtClock   = "at_clock"
)

var atClockPattern = regexp.MustCompile(`at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// Result is a resolved time phrase.
type Result struct {
	At   time.Time
	Rule string
}

type rule struct {
	name    string
	applies func(phrase string) bool
	resolve func(phrase string, now time.Time) (time.Time, bool)
}

// Parser resolves a small fixed grammar of time phrases against a reference
// time. Rules are tried in order and the first one that resolves wins; a rule
// that applies but cannot resolve falls through to the next.
type Parser struct {
	rules []rule
}

func NewParser() *Parser {
	return &Parser{
		rules: []rule{
			{
				name: RuleInMinutes,
				applies: func(phrase string) bool {
					return strings.Contains(phrase, "in ") && strings.Contains(phrase, "minute")
				},
				resolve: relative(time.Minute),
			},
			{
				name: RuleInHours,
				applies: func(phrase string) bool {
					return strings.Contains(phrase, "in ") && strings.Contains(phrase, "hour")
				},
				resolve: relative(time.Hour),
			},
			{
				name: RuleAtClock,
				applies: func(phrase string) bool {
					return strings.Contains(phrase, "at ")
				},
				resolve: atClock,
			},
		},
	}
}

// Parse never fails with an error: an unrecognized phrase yields ok == false.
func (p *Parser) Parse(phrase string, now time.Time) (Result, bool) {
	phrase = strings.ToLower(phrase)

	for _, r := range p.rules {
		if !r.applies(phrase) {
			continue
		}
		if at, ok := r.resolve(phrase, now); ok {
			return Result{At: at, Rule: r.name}, true
		}
	}

	return Result{}, false
}

func relative(unit time.Duration) func(string, time.Time) (time.Time, bool) {
	return func(phrase string, now time.Time) (time.Time, bool) {
		n, ok := firstNumber(phrase)
		if !ok {
			return time.Time{}, false
		}
		if n > math.MaxInt64/int64(unit) {
			return time.Time{}, false
		}
		return now.Add(time.Duration(n) * unit), true
	}
}

// firstNumber returns the first whitespace-delimited token made only of ASCII
// digits.
func firstNumber(phrase string) (int64, bool) {
	for _, field := range strings.Fields(phrase) {
		if !isDigits(field) {
			continue
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atClock(phrase string, now time.Time) (time.Time, bool) {
	m := atClockPattern.FindStringSubmatch(phrase)
	if m == nil {
		return time.Time{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
	}

	switch m[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	year, month, day := now.Date()
	candidate := time.Date(year, month, day, hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = time.Date(year, month, day+1, hour, minute, 0, 0, now.Location())
	}

	return candidate, true
}
