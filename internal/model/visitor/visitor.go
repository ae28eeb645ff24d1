// Package visitor holds the visitor log entity, the set of columns that can be
// updated one at a time, and the fixed status and error vocabulary returned by
// the data access layer.
package visitor

import (
	"encoding/json"
	"math"
)

// MaxAge is the upper bound accepted for a visitor's age.
const MaxAge = 150

// Visitor is a single row of the visitors table.
type Visitor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Assistant string `json:"assistant"`
	Comments  string `json:"comments"`
}

// NewVisitor carries the writable fields exactly as the caller sent them.
//
// The fields are untyped on purpose: a JSON body can put a number where a
// string belongs, and the validator reports that with the offending value.
type NewVisitor struct {
	Name      any `json:"name"`
	Age       any `json:"age"`
	Date      any `json:"date"`
	Time      any `json:"time"`
	Assistant any `json:"assistant"`
	Comments  any `json:"comments"`
}

// Visitor converts an already validated NewVisitor into its typed form.
// Fields that do not hold the expected type are left as zero values.
func (n NewVisitor) Visitor() Visitor {
	v := Visitor{}
	v.Name, _ = n.Name.(string)
	v.Age, _ = WholeNumber(n.Age)
	v.Date, _ = n.Date.(string)
	v.Time, _ = n.Time.(string)
	v.Assistant, _ = n.Assistant.(string)
	v.Comments, _ = n.Comments.(string)
	return v
}

// WholeNumber reports whether v is an integral number and returns it as int.
//
// JSON decoding into `any` yields float64, so 25.0 is accepted and 25.5 is not.
func WholeNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
