package jsonshape

import (
	"strings"

	"github.com/hadstj/jsonshape/i18n"
)

// TagKind classifies the shape a Tag selects for.
type TagKind int

const (
	TagBool TagKind = iota
	TagNumber
	TagString
	TagCollection
	TagRecord
)

// Tag names a structural shape. Record tags may carry a free-form Name used
// only for display; matching ignores it.
type Tag struct {
	Kind TagKind
	Name string
}

// Code renders the canonical short form of t, the inverse of ParseTagCode.
func (t Tag) Code() string {
	var code string
	switch t.Kind {
	case TagBool:
		code = "b"
	case TagNumber:
		code = "n"
	case TagString:
		code = "s"
	case TagCollection:
		code = "c"
	case TagRecord:
		code = "r"
	default:
		code = "?"
	}
	if t.Name != "" {
		return code + "@" + t.Name
	}
	return code
}

func (t Tag) String() string {
	var kind string
	switch t.Kind {
	case TagBool:
		kind = "Boolean"
	case TagNumber:
		kind = "Number"
	case TagString:
		kind = "String"
	case TagCollection:
		kind = "Collection"
	case TagRecord:
		kind = "Record"
	default:
		kind = "Unknown"
	}
	if t.Name != "" {
		return kind + "@" + t.Name
	}
	return kind
}

// ParseTagCode parses a tag code such as "n", "record", or "r@Author".
// Codes are matched case-insensitively; an optional "@Name" suffix is kept
// verbatim. Unknown codes fail with code unknown_tag.
func ParseTagCode(code string) (Tag, error) {
	body, name := code, ""
	if i := strings.IndexByte(code, '@'); i >= 0 {
		body, name = code[:i], code[i+1:]
	}
	var kind TagKind
	switch strings.ToLower(body) {
	case "b", "bool", "boolean":
		kind = TagBool
	case "n", "num", "number":
		kind = TagNumber
	case "s", "str", "string":
		kind = TagString
	case "c", "coll", "collection", "array":
		kind = TagCollection
	case "r", "rec", "record":
		kind = TagRecord
	default:
		return Tag{}, singleIssue(CodeUnknownTag, i18n.T(CodeUnknownTag, map[string]string{"code": code}))
	}
	return Tag{Kind: kind, Name: name}, nil
}

// MustParseTagCode is ParseTagCode for statically known codes.
func MustParseTagCode(code string) Tag {
	t, err := ParseTagCode(code)
	if err != nil {
		panic(err)
	}
	return t
}

// MatchesTag reports whether v structurally matches t. Null matches no tag,
// number tags accept both integral and fractional numbers, and record tags
// match any Object regardless of the tag's Name.
func MatchesTag(v Value, t Tag) bool {
	switch v.(type) {
	case nil, Null:
		return false
	case Bool:
		return t.Kind == TagBool
	case Number, Float:
		return t.Kind == TagNumber
	case String:
		return t.Kind == TagString
	case Array:
		return t.Kind == TagCollection
	case Object:
		return t.Kind == TagRecord
	default:
		return false
	}
}
