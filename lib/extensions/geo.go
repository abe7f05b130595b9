package extensions

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SerializeCountryTable encodes a country-code -> host table as a single
// escaped string, suitable for embedding as a build-time constant inside
// rendered function code. json.Marshal sorts map keys, so identical tables
// always serialize identically.
func SerializeCountryTable(table map[string]string) (string, error) {
	if len(table) == 0 {
		return "", fmt.Errorf("%w: country table must not be empty", ErrInvalidConfiguration)
	}
	raw, err := json.Marshal(table)
	if err != nil {
		return "", fmt.Errorf("serializing country table: %w", err)
	}
	return strconv.Quote(string(raw)), nil
}

// ParseCountryTable reverses SerializeCountryTable exactly.
func ParseCountryTable(s string) (map[string]string, error) {
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return nil, fmt.Errorf("unquoting country table: %w", err)
	}
	var table map[string]string
	if err := json.Unmarshal([]byte(unquoted), &table); err != nil {
		return nil, fmt.Errorf("decoding country table: %w", err)
	}
	return table, nil
}
