package rowdex

import (
	"fmt"
	"strings"
)

// valueKind buckets a scalar for ordering purposes. All numeric types share
// one bucket so int, uint and float columns compare within a single numeric
// domain; mismatched buckets order by rank, which keeps the sort total and
// deterministic even over heterogeneous columns.
type valueKind uint8

const (
	kindNil valueKind = iota
	kindBool
	kindNumber
	kindString
	kindOther
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNil
	case bool:
		return kindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return kindNumber
	case string:
		return kindString
	default:
		return kindOther
	}
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

// compareValues orders two scalar column values, returning -1, 0 or 1.
// nil sorts first, bools order false<true, numbers by value, strings
// lexically. Values outside those kinds fall back to their fmt rendering;
// that keeps the order total but is an approximation, so key columns should
// hold plain scalars.
func compareValues(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	switch ka {
	case kindNil:
		return 0
	case kindBool:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case kindNumber:
		fa, fb := asFloat64(a), asFloat64(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case kindString:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
