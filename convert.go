package jsonshape

import (
	"math"
	"strconv"
	"strings"

	"github.com/hadstj/jsonshape/culture"
)

// Scalar conversions used by generated accessors. All are lenient comma-ok
// coercions: Null and unconvertible shapes report absence, never a fault.
// The culture steers string parsing only; rendering stays invariant so
// converted output round-trips through Parse.

func cultureOf(c *culture.Info) culture.Info {
	if c == nil {
		return culture.Invariant()
	}
	return *c
}

// AsString coerces scalar nodes to text: String verbatim, Bool as
// "true"/"false", numbers rendered invariantly.
func AsString(v Value, c *culture.Info) (string, bool) {
	switch n := v.(type) {
	case String:
		return string(n), true
	case Bool:
		if n {
			return "true", true
		}
		return "false", true
	case Number:
		return strconv.FormatInt(int64(n), 10), true
	case Float:
		return strconv.FormatFloat(float64(n), 'g', -1, 64), true
	default:
		return "", false
	}
}

// AsInt coerces to an integer: Number verbatim, Float when integral, String
// parsed under the culture's conventions.
func AsInt(v Value, c *culture.Info) (int64, bool) {
	switch n := v.(type) {
	case Number:
		return int64(n), true
	case Float:
		f := float64(n)
		if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
			return 0, false
		}
		return int64(f), true
	case String:
		i, err := cultureOf(c).ParseInt(string(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsFloat coerces to a float: Float and Number verbatim, String parsed under
// the culture's conventions.
func AsFloat(v Value, c *culture.Info) (float64, bool) {
	switch n := v.(type) {
	case Float:
		return float64(n), true
	case Number:
		return float64(n), true
	case String:
		f, err := cultureOf(c).ParseFloat(string(n))
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsBool coerces to a boolean: Bool verbatim, the usual textual spellings
// case-insensitively, and the numeric 0/1 encoding.
func AsBool(v Value) (bool, bool) {
	switch n := v.(type) {
	case Bool:
		return bool(n), true
	case String:
		switch strings.ToLower(string(n)) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return false, false
	case Number:
		switch n {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return false, false
	case Float:
		switch n {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
