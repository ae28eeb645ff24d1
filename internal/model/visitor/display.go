package visitor

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DisplayValue renders a decoded JSON value the way it reads when
// interpolated into a message:
//   - numbers in plain decimal (20240513, not 2.0240513e+07); exponent form
//     only below 1e-6 or from 1e21 up
//   - arrays as their elements joined by commas, null elements empty
//   - objects as [object Object]
//   - null as null
func DisplayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			if elem != nil {
				parts[i] = DisplayValue(elem)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	abs := math.Abs(n)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	// 1e-07 -> 1e-7, 1e+21 stays.
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
