package dto

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount decodes a JSON number or numeric string into an optional
// decimal. A missing, null, or malformed value decodes as absent rather
// than failing the whole request, so one bad record never aborts
// evaluation of the others; the engine treats the field as "no signal".
type Amount struct {
	Value *decimal.Decimal
}

// UnmarshalJSON never returns an error; unusable input is absent.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err == nil {
		a.Value = &d
	}
	return nil
}

// MarshalJSON renders the amount as a JSON number, or null when absent.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return []byte("null"), nil
	}
	return a.Value.MarshalJSON()
}
