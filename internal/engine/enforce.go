package engine

import (
	"strconv"
	"strings"
)

// Streaming enforcement for TokenSource: duplicate key policy, maximum
// nesting depth, and maximum consumed bytes. Paths are tracked as JSON
// Pointers so issues can name the offending location.

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives non-fatal issues (duplicate keys under DupWarn).
	// If nil, non-fatal issues are dropped.
	IssueSink func(SimpleIssue)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy, maximum nesting depth, and maximum consumed bytes of opt.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingSource{inner: inner, opt: opt}
}

type enforcingSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	path := e.pathFor(tok)

	switch tok.Kind {
	case KindBeginObject:
		e.stack = append(e.stack, frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: path})
		if err := e.checkDepth(path); err != nil {
			return Token{}, err
		}
	case KindBeginArray:
		e.stack = append(e.stack, frame{kind: kindArray, path: path})
		if err := e.checkDepth(path); err != nil {
			return Token{}, err
		}
	case KindEndObject, KindEndArray:
		e.pop()
		e.settleValue()
	case KindKey:
		if err := e.noteKey(tok.String, path); err != nil {
			return Token{}, err
		}
	case KindString, KindNumber, KindBool, KindNull:
		e.settleValue()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, IssueError{SimpleIssue{Code: "truncated", Path: pointer(path), Message: "max bytes exceeded"}}
		}
	}

	return tok, nil
}

func (e *enforcingSource) Location() int64 { return e.inner.Location() }

func (e *enforcingSource) checkDepth(path string) error {
	if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
		return IssueError{SimpleIssue{Code: "parse_error", Path: pointer(path), Message: "max depth exceeded"}}
	}
	return nil
}

// noteKey records an object key, reporting or rejecting duplicates.
func (e *enforcingSource) noteKey(key, path string) error {
	top := e.top()
	if top == nil || top.kind != kindObject || !top.expectingKey {
		return nil
	}
	if e.opt.OnDuplicate != DupIgnore {
		if _, seen := top.keys[key]; seen {
			si := SimpleIssue{Code: "duplicate_key", Path: pointer(path), Message: "key '" + key + "' duplicated"}
			if e.opt.OnDuplicate == DupError {
				return IssueError{si}
			}
			if e.opt.IssueSink != nil {
				e.opt.IssueSink(si)
			}
		}
	}
	top.keys[key] = struct{}{}
	top.expectingKey = false
	top.pendingKey = key
	return nil
}

// settleValue marks the enclosing object as expecting a key again after a
// member value completed.
func (e *enforcingSource) settleValue() {
	if top := e.top(); top != nil && top.kind == kindObject && !top.expectingKey {
		top.expectingKey = true
		top.pendingKey = ""
	}
}

func (e *enforcingSource) pop() {
	if n := len(e.stack); n > 0 {
		e.stack = e.stack[:n-1]
	}
}

func (e *enforcingSource) top() *frame {
	if n := len(e.stack); n > 0 {
		return &e.stack[n-1]
	}
	return nil
}

// pathFor computes the JSON Pointer of the node the token belongs to.
func (e *enforcingSource) pathFor(tok Token) string {
	top := e.top()
	if top == nil {
		if tok.Kind == KindKey {
			return joinPointer("", tok.String)
		}
		return ""
	}
	switch tok.Kind {
	case KindKey:
		return joinPointer(top.path, tok.String)
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		if top.kind == kindArray {
			p := joinPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		if top.pendingKey != "" || !top.expectingKey {
			return joinPointer(top.path, top.pendingKey)
		}
		return top.path
	default:
		return top.path
	}
}

func pointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// joinPointer appends an RFC 6901 escaped token to a JSON Pointer.
func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
