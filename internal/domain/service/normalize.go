package service

import (
	"strconv"
	"strings"
)

// StringSet coerces a multi-select profile field into its canonical form.
// Arrays pass through, a single string is split on commas, anything else is
// the empty set. Duplicates collapse, insertion order is kept for display.
func StringSet(v interface{}) []string {
	switch val := v.(type) {
	case []string:
		return dedupe(val)
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return dedupe(items)
	case string:
		return dedupe(strings.Split(val, ","))
	default:
		return nil
	}
}

// IntValue parses a numeric-looking profile field, defaulting to 0 for any
// absent or unparseable value. It never fails; 0 reads as "not set".
func IntValue(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
