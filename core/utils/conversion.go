package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts loosely typed JSON values to int.
// Printer firmware sends the same field as a number or a quoted string
// depending on model, so both are accepted. Unparseable values yield
// fallback.
func ToInt(val any, fallback int) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return fallback
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return fallback
	default:
		return fallback
	}
}

// ToString converts loosely typed JSON values to a trimmed string.
// nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// IsZeroID reports whether an identifier is blank or made only of zeros,
// which printers send for slots without a readable tag.
func IsZeroID(id string) bool {
	return strings.Trim(strings.TrimSpace(id), "0") == ""
}
