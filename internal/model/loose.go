package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LooseBool accepts JSON booleans, numbers and the strings
// "1", "true", "on", "yes" / "0", "false", "off", "no", "".
// Only the number 1 is true; any other string is an error.
type LooseBool bool

// ParseLooseBool parses the textual forms accepted by LooseBool.
func ParseLooseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true, nil
	case "0", "false", "off", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case bool:
		*b = LooseBool(t)
	case float64:
		*b = t == 1
	case string:
		parsed, err := ParseLooseBool(t)
		if err != nil {
			return err
		}
		*b = LooseBool(parsed)
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

// LooseInt accepts JSON numbers and numeric strings. Fractions are truncated.
type LooseInt int

// ParseLooseInt parses the textual forms accepted by LooseInt.
func ParseLooseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return clampInt(f), nil
}

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case float64:
		*n = LooseInt(clampInt(t))
	case string:
		parsed, err := ParseLooseInt(t)
		if err != nil {
			return err
		}
		*n = LooseInt(parsed)
	default:
		return fmt.Errorf("invalid integer %s", data)
	}
	return nil
}

// clampInt truncates f toward zero, saturating at the int32 range so that
// absurd inputs still fail range checks instead of overflowing.
func clampInt(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}

// BoolOr returns the dereferenced value, or fallback if p is nil.
func BoolOr(p *LooseBool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return bool(*p)
}

// IntOr returns the dereferenced value, or fallback if p is nil.
func IntOr(p *LooseInt, fallback int) int {
	if p == nil {
		return fallback
	}
	return int(*p)
}
