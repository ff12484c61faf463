package product

import (
	"cmp"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SortBy orders products in place by field when the first product carries it.
// Order "asc" sorts ascending; any other value sorts descending.
// It reports whether a sort was applied.
func SortBy(products []Raw, field, order string) bool {
	if field == "" || len(products) == 0 {
		return false
	}
	if _, ok := products[0][field]; !ok {
		return false
	}

	asc := order == OrderAsc
	sort.SliceStable(products, func(i, j int) bool {
		c := compareValues(products[i][field], products[j][field])
		if asc {
			return c < 0
		}
		return c > 0
	})
	return true
}

// compareValues is a three-way comparison over decoded JSON scalars.
// Nulls sort first; mixed kinds compare by their string rendering.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return boolRank(ba) - boolRank(bb)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
