package jsonshape

import (
	"context"
	"strconv"

	"github.com/hadstj/jsonshape/i18n"
)

// PackFunc wraps a raw node as the caller's representation type.
type PackFunc[R any] func(Value) R

// UnpackFunc recovers the raw node from a representation.
type UnpackFunc[R any] func(R) Value

// MapFunc converts a representation to the projection target.
type MapFunc[R, T any] func(R) T

// Identity is the pack, unpack, and map closure for callers projecting raw
// nodes directly.
func Identity(v Value) Value { return v }

// ConvertArray projects every element of an array document through pack and
// conv, preserving order. A non-array node is a shape fault.
func ConvertArray[R, T any](doc R, unpack UnpackFunc[R], pack PackFunc[R], conv MapFunc[R, T]) ([]T, error) {
	arr, err := arrayOf(unpack(doc))
	if err != nil {
		return nil, err
	}
	out := make([]T, len(arr))
	for i, el := range arr {
		out[i] = conv(pack(el))
	}
	return out, nil
}

// ConvertArrayContext awaits fetch(ctx) for the document, then projects it
// exactly like ConvertArray.
func ConvertArrayContext[R, T any](ctx context.Context, fetch func(context.Context) (R, error), unpack UnpackFunc[R], pack PackFunc[R], conv MapFunc[R, T]) ([]T, error) {
	doc, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	return ConvertArray(doc, unpack, pack, conv)
}

// ChildrenByTag projects the elements of array v whose shape matches the tag
// code, in element order. Non-matching elements are skipped, not faulted.
func ChildrenByTag[R, T any](v Value, code string, pack PackFunc[R], conv MapFunc[R, T]) ([]T, error) {
	tag, err := ParseTagCode(code)
	if err != nil {
		return nil, err
	}
	arr, err := arrayOf(v)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, el := range arr {
		if MatchesTag(el, tag) {
			out = append(out, conv(pack(el)))
		}
	}
	return out, nil
}

// LookupChildByTag projects the single element of array v matching the tag
// code. No match reports absence; two or more matches violate the
// single-or-none contract and fault rather than resolve arbitrarily.
func LookupChildByTag[R, T any](v Value, code string, pack PackFunc[R], conv MapFunc[R, T]) (T, bool, error) {
	var zero T
	tag, err := ParseTagCode(code)
	if err != nil {
		return zero, false, err
	}
	arr, err := arrayOf(v)
	if err != nil {
		return zero, false, err
	}
	var found Value
	count := 0
	for _, el := range arr {
		if MatchesTag(el, tag) {
			if count == 0 {
				found = el
			}
			count++
		}
	}
	switch count {
	case 0:
		return zero, false, nil
	case 1:
		return conv(pack(found)), true, nil
	default:
		return zero, false, singleIssue(CodeAmbiguousMatch, i18n.T(CodeAmbiguousMatch, map[string]string{
			"tag":   tag.Code(),
			"count": strconv.Itoa(count),
		}))
	}
}

// ChildByTag returns the single raw element of array v matching the tag
// code. Zero matches fault with no_match, two or more with ambiguous_match.
func ChildByTag(v Value, code string) (Value, error) {
	child, ok, err := LookupChildByTag(v, code, Identity, Identity)
	if err != nil {
		return nil, err
	}
	if !ok {
		tag, _ := ParseTagCode(code)
		return nil, singleIssue(CodeNoMatch, i18n.T(CodeNoMatch, map[string]string{"tag": tag.Code()}))
	}
	return child, nil
}

// LookupValueByTag probes one non-array node against the tag code: the
// projected value when it matches, absence when it does not.
func LookupValueByTag[R, T any](v Value, code string, pack PackFunc[R], conv MapFunc[R, T]) (T, bool, error) {
	var zero T
	tag, err := ParseTagCode(code)
	if err != nil {
		return zero, false, err
	}
	if !MatchesTag(v, tag) {
		return zero, false, nil
	}
	return conv(pack(v)), true, nil
}

// LookupProperty returns the named member of v. A missing member, an
// explicit null, and a non-record receiver all report absence.
func LookupProperty(v Value, name string) (Value, bool) {
	obj, ok := v.(Object)
	if !ok {
		return nil, false
	}
	prop, ok := obj.Lookup(name)
	if !ok {
		return nil, false
	}
	if _, isNull := prop.(Null); isNull {
		return nil, false
	}
	return prop, true
}

// Property is the strict accessor: a missing or null member is a fault with
// code required.
func Property(v Value, name string) (Value, error) {
	prop, ok := LookupProperty(v, name)
	if !ok {
		return nil, singleIssue(CodeRequired, i18n.T(CodeRequired, map[string]string{"name": name}))
	}
	return prop, nil
}

// ConvertOptionalProperty projects the named member of v when present and
// non-null; missing and null collapse to absence.
func ConvertOptionalProperty[R, T any](v Value, name string, pack PackFunc[R], conv MapFunc[R, T]) (T, bool) {
	prop, ok := LookupProperty(v, name)
	if !ok {
		var zero T
		return zero, false
	}
	return conv(pack(prop)), true
}

func arrayOf(v Value) (Array, error) {
	arr, ok := v.(Array)
	if !ok {
		return nil, shapeMismatch(KindArray, v)
	}
	return arr, nil
}

func shapeMismatch(expected Kind, got Value) Issues {
	return singleIssue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{
		"expected": expected.String(),
		"actual":   kindName(got),
	}))
}

func kindName(v Value) string {
	if v == nil {
		return "Null"
	}
	return v.Kind().String()
}
