package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexString accepts both JSON strings and numbers. Identifiers switch between
// the two depending on the endpoint.
type flexString struct {
	Value   string
	Present bool
}

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = flexString{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString{Value: s, Present: s != ""}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString{Value: n.String(), Present: true}
	return nil
}

func (f flexString) ptr() *string {
	if !f.Present {
		return nil
	}
	return &f.Value
}

// flexUint accepts integers, floats and numeric strings; fractions are truncated.
type flexUint struct {
	Value   uint
	Present bool
}

func (f *flexUint) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if !s.Present {
		*f = flexUint{}
		return nil
	}

	n, err := strconv.ParseFloat(s.Value, 64)
	if err != nil || n < 0 {
		// Not a usable number, treat as absent.
		*f = flexUint{}
		return nil
	}
	*f = flexUint{Value: uint(n), Present: true}
	return nil
}
