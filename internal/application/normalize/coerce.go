package normalize

import (
	"strconv"
	"strings"
)

// ToInt coerces a loosely-typed scalar into an integer. Every character
// that is not a digit is stripped (a leading minus sign is kept), and the
// remaining digit run is parsed base-10. Inputs with no digits, including
// empty strings and booleans, coerce to 0 rather than failing.
//
// Examples: "Rp 12.000" -> 12000, "-45abc" -> -45, "" -> 0, true -> 0.
func ToInt(value any) int64 {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		// JSON numbers decode as float64; scan the printed form so that
		// separators behave the same as in string inputs.
		return scanInt(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		return scanInt(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case string:
		return scanInt(v)
	default:
		return 0
	}
}

func scanInt(s string) int64 {
	s = strings.TrimSpace(s)

	negative := strings.HasPrefix(s, "-")

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -n
	}
	return n
}
