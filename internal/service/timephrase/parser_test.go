package timephrase

import (
	"testing"
	"time"
)

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	morning := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	evening := time.Date(2024, 1, 1, 20, 5, 0, 0, time.Local)

	tests := []struct {
		name     string
		phrase   string
		now      time.Time
		wantAt   time.Time
		wantRule string
	}{
		{
			name:     "in 10 minutes",
			phrase:   "in 10 minutes",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 9, 10, 0, 0, time.Local),
			wantRule: RuleInMinutes,
		},
		{
			name:     "singular minute",
			phrase:   "in 1 minute",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 9, 1, 0, 0, time.Local),
			wantRule: RuleInMinutes,
		},
		{
			name:     "upper case is normalized",
			phrase:   "In 5 Minutes",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 9, 5, 0, 0, time.Local),
			wantRule: RuleInMinutes,
		},
		{
			name:     "zero minutes resolves to now",
			phrase:   "in 0 minutes",
			now:      morning,
			wantAt:   morning,
			wantRule: RuleInMinutes,
		},
		{
			name:     "in 2 hours",
			phrase:   "in 2 hours",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local),
			wantRule: RuleInHours,
		},
		{
			name:     "hours across midnight",
			phrase:   "in 5 hours",
			now:      evening,
			wantAt:   time.Date(2024, 1, 2, 1, 5, 0, 0, time.Local),
			wantRule: RuleInHours,
		},
		{
			name:     "minutes wins over hours",
			phrase:   "in 5 minutes or maybe an hour",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 9, 5, 0, 0, time.Local),
			wantRule: RuleInMinutes,
		},
		{
			name:     "7 pm later today",
			phrase:   "at 7 pm",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 19, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "7 pm already passed rolls to next day",
			phrase:   "at 7 pm",
			now:      evening,
			wantAt:   time.Date(2024, 1, 2, 19, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "12 pm stays noon",
			phrase:   "at 12 pm",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "12 am is midnight of the next day",
			phrase:   "at 12 am",
			now:      morning,
			wantAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "24 hour clock with minutes",
			phrase:   "at 14:30",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 14, 30, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "am with minutes already passed",
			phrase:   "at 7:45 am",
			now:      morning,
			wantAt:   time.Date(2024, 1, 2, 7, 45, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "exactly now rolls forward one day",
			phrase:   "at 9",
			now:      morning,
			wantAt:   time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "meridiem without space",
			phrase:   "at 8pm",
			now:      morning,
			wantAt:   time.Date(2024, 1, 1, 20, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
		{
			name:     "roll forward across month end",
			phrase:   "at 6 am",
			now:      time.Date(2024, 1, 31, 22, 0, 0, 0, time.Local),
			wantAt:   time.Date(2024, 2, 1, 6, 0, 0, 0, time.Local),
			wantRule: RuleAtClock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.phrase, tt.now)
			if !ok {
				t.Fatalf("Parse(%q) reported no match", tt.phrase)
			}
			if !got.At.Equal(tt.wantAt) {
				t.Errorf("Parse(%q) = %v, want %v", tt.phrase, got.At, tt.wantAt)
			}
			if got.Rule != tt.wantRule {
				t.Errorf("Parse(%q) rule = %q, want %q", tt.phrase, got.Rule, tt.wantRule)
			}
		})
	}
}

func TestParser_Parse_NoMatch(t *testing.T) {
	parser := NewParser()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	phrases := []string{
		"",
		"tomorrow",
		"in a few minutes",
		"in an hour",
		"in ten minutes",
		"minute hour",
		"in 10, minutes",
		"at noon",
		"at",
		"at :30",
		"at 25",
		"at 13 pm",
		"at 10:75",
		"in 99999999999999999999 minutes",
		"in 9223372036854775807 hours",
		"😀 in ⏰ minutes",
		"   ",
	}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			got, ok := parser.Parse(phrase, now)
			if ok {
				t.Errorf("Parse(%q) = %v (%s), want no match", phrase, got.At, got.Rule)
			}
			if !got.At.IsZero() {
				t.Errorf("Parse(%q) returned non-zero time on no match: %v", phrase, got.At)
			}
		})
	}
}

func TestParser_Parse_Deterministic(t *testing.T) {
	parser := NewParser()

	nows := []time.Time{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 23, 55, 12, 345678901, time.Local),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Now(),
	}

	for _, now := range nows {
		first, ok := parser.Parse("in 10 minutes", now)
		if !ok {
			t.Fatalf("Parse at %v reported no match", now)
		}
		if !first.At.Equal(now.Add(10 * time.Minute)) {
			t.Errorf("Parse at %v = %v, want %v", now, first.At, now.Add(10*time.Minute))
		}

		second, _ := parser.Parse("in 10 minutes", now)
		if !second.At.Equal(first.At) {
			t.Errorf("Parse is not deterministic: %v != %v", first.At, second.At)
		}
	}
}
