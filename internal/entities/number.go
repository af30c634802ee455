// Package entities holds the value types shared by the squad document and the
// reference data.
package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient JSON scalar. It accepts numbers, numeric strings and
// anything else without failing the surrounding decode, and only reports an
// integer when the raw text is one.
type Number struct {
	raw string
	set bool
}

// NumberOf returns a Number holding n
func NumberOf(n int) Number {
	return Number{raw: strconv.Itoa(n), set: true}
}

// NumberFromString returns a Number holding raw text as found in a document
func NumberFromString(raw string) Number {
	return Number{raw: raw, set: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number{raw: s, set: true}
		return nil
	}
	*n = Number{raw: string(data), set: true}
	return nil
}

// MarshalJSON implements json.Marshaler. Integers are written as numbers,
// other text as strings.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	if v, ok := n.Int(); ok {
		return []byte(strconv.Itoa(v)), nil
	}
	return json.Marshal(n.raw)
}

// IsSet reports whether the field was present and not null
func (n Number) IsSet() bool {
	return n.set
}

// Int returns the value as an int. Floats with no fractional part count.
func (n Number) Int() (int, bool) {
	if !n.set {
		return 0, false
	}
	s := strings.TrimSpace(n.raw)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// String returns the raw text, or "?" when unset
func (n Number) String() string {
	if !n.set {
		return "?"
	}
	return n.raw
}
