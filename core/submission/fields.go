package submission

import "strconv"

// Loose-payload field accessors. Frontend versions disagree on field names,
// so every accessor takes the list of known aliases and returns the first
// hit. Missing or mistyped values yield zero values, never errors.

// Str returns the first non-empty string value among `keys`.
func Str(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// Num returns the first numeric value among `keys`.
// JSON numbers decode as float64; numeric strings ("450") are accepted too
// since older form versions submitted them as text.
func Num(m map[string]interface{}, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// Strs returns the first string-slice value among `keys`.
// A plain string value is returned as a single-element slice.
func Strs(m map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch vals := v.(type) {
		case []interface{}:
			out := make([]string, 0, len(vals))
			for _, item := range vals {
				if s, ok := item.(string); ok && s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if vals != "" {
				return []string{vals}
			}
		}
	}
	return nil
}
