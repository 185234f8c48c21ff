package classifier

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToNum converts an externally supplied scalar to a number. Non-numeric input
// yields nil, never zero: callers treat nil as "unknown".
func ToNum(v any) *float64 {
	var f float64
	switch val := v.(type) {
	case nil:
		return nil
	case json.Number:
		parsed, ok := parseFloat(string(val))
		if !ok {
			return nil
		}
		f = parsed
	case string:
		parsed, ok := parseFloat(val)
		if !ok {
			return nil
		}
		f = parsed
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ToInt64 is ToNum restricted to integral values, used for ids and scores.
// Decimal integer strings are parsed exactly so ids above 2^53 keep their value.
func ToInt64(v any) *int64 {
	var s string
	switch val := v.(type) {
	case json.Number:
		s = string(val)
	case string:
		s = val
	case int64:
		return &val
	case int:
		i := int64(val)
		return &i
	}
	if s != "" {
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return &i
		}
	}

	f := ToNum(v)
	if f == nil || *f != math.Trunc(*f) || *f > math.MaxInt64 || *f < math.MinInt64 {
		return nil
	}
	i := int64(*f)
	return &i
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ElapsedMinutes returns end - start in (fractional) minutes.
func ElapsedMinutes(start, end time.Time) float64 {
	return end.Sub(start).Minutes()
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp reads the ISO 8601 timestamps Gorgias emits. Values without
// a zone are taken as UTC. Unparsable or empty input yields nil.
func ParseTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
