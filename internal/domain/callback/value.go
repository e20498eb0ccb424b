package callback

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value is the raw value published by a UI input. Slider positions arrive
// as JSON numbers and dropdown selections as JSON strings; both are accepted
// by either accessor when they convert cleanly.
type Value struct {
	raw string
}

// IntValue wraps an integer input value.
func IntValue(v int) Value { return Value{raw: strconv.Itoa(v)} }

// StringValue wraps a string input value.
func StringValue(v string) Value { return Value{raw: v} }

// String returns the value as text.
func (v Value) String() string { return v.raw }

// Int parses the value as an integer.
func (v Value) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, v.raw)
	}
	return n, nil
}

// UnmarshalJSON accepts a JSON string or number.
func (v *Value) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.raw = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, string(b))
	}
	v.raw = n.String()
	return nil
}

// MarshalJSON encodes the value as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}
