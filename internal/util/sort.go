package util

import (
	"cmp"
	"sort"
	"strings"
	"time"
)

// Fielder exposes record fields by their remote (JSON) name for sorting.
type Fielder interface {
	Field(name string) interface{}
}

type SortKey struct {
	Field string
	Desc  bool
}

// ParseSortKeys reads specs of the form "<field> [asc|desc]"; the default is asc.
func ParseSortKeys(specs ...string) []SortKey {
	keys := make([]SortKey, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Fields(spec)
		if len(parts) == 0 {
			continue
		}
		key := SortKey{Field: parts[0]}
		if len(parts) > 1 && strings.EqualFold(parts[1], "desc") {
			key.Desc = true
		}
		keys = append(keys, key)
	}
	return keys
}

// SortBy sorts items in place with a stable multi-key comparison: the first
// key whose values differ decides, and full ties keep their input order.
func SortBy[T Fielder](items []T, specs ...string) {
	keys := ParseSortKeys(specs...)
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, key := range keys {
			c := CompareValues(items[i].Field(key.Field), items[j].Field(key.Field))
			if c == 0 {
				continue
			}
			if key.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// CompareValues orders two field values naturally. nil sorts before any value;
// values of unrelated kinds compare equal.
func CompareValues(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return cmp.Compare(fa, fb)
		}
		return 0
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok && av != bv {
			if av {
				return 1
			}
			return -1
		}
	}
	return 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
