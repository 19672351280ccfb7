package models

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number is a float64 that also accepts numeric strings when decoded from
// JSON. An empty string or null decodes to zero.
type Number float64

// Int is an integer that also accepts numeric strings when decoded from JSON.
type Int int

func (n *Number) UnmarshalJSON(b []byte) error {
	f, err := coerceNumber(b, reflect.TypeOf(float64(0)))
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n *Int) UnmarshalJSON(b []byte) error {
	f, err := coerceNumber(b, reflect.TypeOf(int(0)))
	if err != nil {
		return err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return &json.UnmarshalTypeError{Value: "number " + string(b), Type: reflect.TypeOf(int(0))}
	}
	*n = Int(f)
	return nil
}

// NumberPtr returns a pointer to f as a Number.
func NumberPtr(f float64) *Number {
	n := Number(f)
	return &n
}

// IntPtr returns a pointer to i as an Int.
func IntPtr(i int) *Int {
	n := Int(i)
	return &n
}

func StringPtr(s string) *string { return &s }

func coerceNumber(b []byte, target reflect.Type) (float64, error) {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return 0, nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: target}
		}
		return f, nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return 0, &json.UnmarshalTypeError{Value: raw, Type: target}
	}
	return f, nil
}
