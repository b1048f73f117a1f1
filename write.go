package jsonshape

import (
	"io"
	"math"
	"strconv"
)

// AppendJSON appends the compact JSON encoding of v to dst and returns the
// extended buffer. Object member order is preserved. Non-finite floats have
// no JSON representation and are written as null.
func AppendJSON(dst []byte, v Value) []byte {
	switch n := v.(type) {
	case Null:
		return append(dst, "null"...)
	case Bool:
		if n {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return strconv.AppendInt(dst, int64(n), 10)
	case Float:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(dst, "null"...)
		}
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	case String:
		return appendQuoted(dst, string(n))
	case Array:
		dst = append(dst, '[')
		for i, el := range n {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, el)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, m := range n {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, m.Name)
			dst = append(dst, ':')
			dst = AppendJSON(dst, m.Value)
		}
		return append(dst, '}')
	default:
		// nil Value inside a tree; treat as null.
		return append(dst, "null"...)
	}
}

// EncodeJSON returns the compact JSON encoding of v as a string.
func EncodeJSON(v Value) string { return string(AppendJSON(nil, v)) }

// WriteJSON writes the compact JSON encoding of v to w.
func WriteJSON(w io.Writer, v Value) error {
	_, err := w.Write(AppendJSON(nil, v))
	return err
}

// MarshalJSON lets Null survive encoding/json marshaling (the struct would
// otherwise encode as {}).
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON keeps Object's member form when marshaled via encoding/json
// (the slice of members would otherwise encode as an array of pairs).
func (o Object) MarshalJSON() ([]byte, error) { return AppendJSON(nil, o), nil }

const hexDigits = "0123456789abcdef"

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b != '"' && b != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch b {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
