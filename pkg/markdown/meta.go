// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"strconv"
	"time"
)

// Meta is the front matter of a markdown document
type Meta map[string]interface{}

// String returns the value of key formatted as string or "" if absent
func (m Meta) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Int returns the value of key as int. The second result is false
// when the key is absent or not a number.
func (m Meta) Int(key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		i, err := strconv.Atoi(v)
		return i, err == nil
	}
	return 0, false
}

// Bool returns the value of key as bool, false when absent
func (m Meta) Bool(key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Strings returns a list value. A single string is returned as one element list.
func (m Meta) Strings(key string) []string {
	switch v := m[key].(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, fmt.Sprintf("%v", e))
		}
		return out
	case []string:
		return v
	}
	return nil
}

// Time returns the value of key parsed as a date. Both plain dates
// and RFC 3339 timestamps are accepted.
func (m Meta) Time(key string) (time.Time, bool, error) {
	switch v := m[key].(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return v, true, nil
	case string:
		for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true, nil
			}
		}
		return time.Time{}, false, fmt.Errorf("front matter %s: cannot parse date %q", key, v)
	}
	return time.Time{}, false, fmt.Errorf("front matter %s: unexpected value %v", key, m[key])
}
