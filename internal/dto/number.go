package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberError reports a JSON value that could not be coerced into a number.
type NumberError struct {
	Field string
	Value string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value)
}

// Price accepts either a JSON number or numeric text ("19.99") and always
// holds the parsed float.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	raw, err := numericText(data)
	if err != nil {
		return &NumberError{Field: "price", Value: string(data)}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return &NumberError{Field: "price", Value: raw}
	}

	*p = Price(value)
	return nil
}

// Quantity accepts a JSON number or numeric text that holds a whole number.
type Quantity int64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw, err := numericText(data)
	if err != nil {
		return &NumberError{Field: "quantity", Value: string(data)}
	}

	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*q = Quantity(value)
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	// float64(math.MaxInt64) rounds up to 2^63, which no int64 can hold
	if err != nil || value != math.Trunc(value) || value < math.MinInt64 || value >= math.MaxInt64 {
		return &NumberError{Field: "quantity", Value: raw}
	}

	*q = Quantity(value)
	return nil
}

// numericText unwraps a JSON string or passes a JSON number through.
func numericText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
