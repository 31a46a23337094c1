package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerces a decoded JSON value into a finite float64. Numbers pass
// through, non-blank numeric strings are parsed, everything else (nil,
// booleans, NaN, Inf, blank or garbage strings) reports false.
func ToNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return ToNumber(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return ToNumber(f)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return ToNumber(f)
	default:
		return 0, false
	}
}
