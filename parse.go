package jsonshape

import (
	"errors"
	"io"
	"strconv"

	"github.com/hadstj/jsonshape/culture"
	"github.com/hadstj/jsonshape/i18n"
	eng "github.com/hadstj/jsonshape/internal/engine"
)

// Parse decodes one complete JSON text into a Value. The entire input must
// form a single value; trailing non-whitespace input is a parse fault.
// cultureID selects the number-literal conventions per culture.Normalize
// (empty means invariant).
func Parse(text string, cultureID string, opts ...LoadOpt) (Value, error) {
	info, err := culture.Normalize(cultureID)
	if err != nil {
		return nil, invalidCulture(cultureID)
	}
	return parseBytes([]byte(text), info, lastOpt(opts))
}

// Load decodes one complete JSON value from r. The reader is consumed but
// not closed; ownership stays with the caller. See ReadDocument for the
// variant that owns and releases its reader.
func Load(r io.Reader, cultureID string, opts ...LoadOpt) (Value, error) {
	info, err := culture.Normalize(cultureID)
	if err != nil {
		return nil, invalidCulture(cultureID)
	}
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		return parseBytes(data, info, opt)
	}
	return parseSource(JSONReader(r), info, opt)
}

func invalidCulture(id string) Issues {
	return singleIssue(CodeInvalidCulture, i18n.T(CodeInvalidCulture, map[string]string{"id": id}))
}

func parseBytes(data []byte, info culture.Info, opt LoadOpt) (Value, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return parseSource(JSONBytes(data), info, opt)
}

func parseSource(src Source, info culture.Info, opt LoadOpt) (Value, error) {
	src = enforceSourceIfNeeded(src, opt)
	v, err := buildValue(src, info)
	if err != nil {
		return nil, toIssues(err)
	}
	if err := requireEOF(src); err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// buildValue assembles the next complete Value from the token stream,
// interpreting number literals under info.
func buildValue(src Source, info culture.Info) (Value, error) {
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return buildFrom(tok, src, info)
}

func buildFrom(tok Token, src Source, info culture.Info) (Value, error) {
	switch tok.Kind {
	case TokenNull:
		return Null{}, nil
	case TokenBool:
		return Bool(tok.Bool), nil
	case TokenString:
		return String(tok.String), nil
	case TokenNumber:
		return numberValue(tok.Number, info)
	case TokenBeginArray:
		arr := Array{}
		for {
			t, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			if t.Kind == TokenEndArray {
				return arr, nil
			}
			el, err := buildFrom(t, src, info)
			if err != nil {
				return nil, err
			}
			arr = append(arr, el)
		}
	case TokenBeginObject:
		obj := Object{}
		for {
			t, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			if t.Kind == TokenEndObject {
				return obj, nil
			}
			if t.Kind != TokenKey {
				return nil, singleIssue(CodeParseError, "expected object key")
			}
			val, err := buildValue(src, info)
			if err != nil {
				return nil, err
			}
			obj = setMember(obj, t.String, val)
		}
	default:
		return nil, singleIssue(CodeParseError, "unexpected token")
	}
}

// setMember appends name=v, replacing in place when the name repeats: the
// last occurrence wins while the member keeps its first position.
func setMember(obj Object, name string, v Value) Object {
	for i := range obj {
		if obj[i].Name == name {
			obj[i].Value = v
			return obj
		}
	}
	return append(obj, Member{Name: name, Value: v})
}

// numberValue maps a raw number literal onto the two numeric variants:
// integer literals parse invariantly to Number, everything else goes through
// the culture's float conventions to Float.
func numberValue(raw string, info culture.Info) (Value, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Number(i), nil
	}
	if f, err := info.ParseFloat(raw); err == nil {
		return Float(f), nil
	}
	return nil, singleIssue(CodeParseError, "invalid number literal "+strconv.Quote(raw))
}

// requireEOF demands the source be exhausted after the top-level value.
func requireEOF(src Source) error {
	_, err := src.NextToken()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return singleIssue(CodeParseError, "unexpected trailing data after top-level value")
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: -1})
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return AppendIssues(nil, Issue{Code: CodeParseError, Message: "unexpected end of JSON input", Offset: -1})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Offset: -1})
}
