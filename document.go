package jsonshape

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/hadstj/jsonshape/culture"
	"github.com/hadstj/jsonshape/i18n"
)

// Document pairs a loaded Value with the JSON Pointer path at which it was
// cut out of the enclosing tree. The path exists for fault messages only;
// projection never re-resolves it.
type Document struct {
	value Value
	path  string
}

// NewDocument wraps an already-parsed value as a root document.
func NewDocument(v Value) Document { return Document{value: v} }

// Value returns the underlying node.
func (d Document) Value() Value { return d.value }

// Path returns the JSON Pointer of this document relative to the loaded
// root, "" for the root itself.
func (d Document) Path() string { return d.path }

// New derives a sub-document holding v at d's path extended by increment.
// Callers build increments with PointerSegment or "/" + index.
func (d Document) New(v Value, increment string) Document {
	return Document{value: v, path: d.path + increment}
}

// Packer returns a PackFunc wrapping nodes as sub-documents of d at the
// given increment. It is the pack argument generated accessors hand to the
// projection helpers.
func (d Document) Packer(increment string) PackFunc[Document] {
	return func(v Value) Document { return d.New(v, increment) }
}

// UnpackDocument is the UnpackFunc for Document representations.
func UnpackDocument(d Document) Value { return d.value }

// LookupProperty returns the named member as a sub-document. A missing
// member and an explicit null both report absence.
func (d Document) LookupProperty(name string) (Document, bool) {
	v, ok := LookupProperty(d.value, name)
	if !ok {
		return Document{}, false
	}
	return d.New(v, PointerSegment(name)), true
}

// Property is the strict accessor: a missing or null member is a fault
// quoting the document path.
func (d Document) Property(name string) (Document, error) {
	sub, ok := d.LookupProperty(name)
	if !ok {
		return Document{}, AppendIssues(nil, Issue{
			Path:    pointerOrRoot(d.path),
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, map[string]string{"name": name}),
			Offset:  -1,
		})
	}
	return sub, nil
}

// PointerSegment renders one JSON Pointer reference token for a member name,
// escaped per RFC 6901.
func PointerSegment(name string) string {
	if strings.ContainsAny(name, "~/") {
		name = strings.ReplaceAll(name, "~", "~0")
		name = strings.ReplaceAll(name, "/", "~1")
	}
	return "/" + name
}

// ReaderFunc produces the reader a suspending load awaits. Implementations
// typically wrap an HTTP response body or a deferred file open.
type ReaderFunc func(ctx context.Context) (io.ReadCloser, error)

// ReadDocument drains rc, closes it, and parses the text as one JSON value.
// The reader is closed exactly once on every exit path. Malformed input is a
// parse fault.
func ReadDocument(rc io.ReadCloser, cultureID string, opts ...LoadOpt) (Document, error) {
	info, err := culture.Normalize(cultureID)
	if err != nil {
		_ = rc.Close()
		return Document{}, invalidCulture(cultureID)
	}
	opt := lastOpt(opts)
	data, err := drainClose(rc, opt.MaxBytes)
	if err != nil {
		return Document{}, err
	}
	v, err := parseBytes(data, info, opt)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(v), nil
}

// ReadDocumentContext awaits open(ctx) for the reader, then loads exactly
// like ReadDocument. Once the reader is in hand, parsing never suspends.
func ReadDocumentContext(ctx context.Context, open ReaderFunc, cultureID string, opts ...LoadOpt) (Document, error) {
	rc, err := open(ctx)
	if err != nil {
		return Document{}, err
	}
	return ReadDocument(rc, cultureID, opts...)
}

// ReadDocumentList drains rc, closes it, and interprets the text in one of
// two shapes: a single JSON value (an array yields one document per element,
// anything else a one-element list), or, when that parse fails, a sequence
// of newline-delimited JSON values with blank lines skipped. A malformed
// line faults the whole call.
func ReadDocumentList(rc io.ReadCloser, cultureID string, opts ...LoadOpt) ([]Document, error) {
	info, err := culture.Normalize(cultureID)
	if err != nil {
		_ = rc.Close()
		return nil, invalidCulture(cultureID)
	}
	opt := lastOpt(opts)
	data, err := drainClose(rc, opt.MaxBytes)
	if err != nil {
		return nil, err
	}
	return documentList(data, info, opt)
}

// ReadDocumentListContext awaits open(ctx) for the reader, then loads
// exactly like ReadDocumentList.
func ReadDocumentListContext(ctx context.Context, open ReaderFunc, cultureID string, opts ...LoadOpt) ([]Document, error) {
	rc, err := open(ctx)
	if err != nil {
		return nil, err
	}
	return ReadDocumentList(rc, cultureID, opts...)
}

func documentList(data []byte, info culture.Info, opt LoadOpt) ([]Document, error) {
	v, err := parseBytes(data, info, opt)
	if err == nil {
		if arr, ok := v.(Array); ok {
			docs := make([]Document, len(arr))
			for i, el := range arr {
				docs[i] = Document{value: el, path: "/" + strconv.Itoa(i)}
			}
			return docs, nil
		}
		return []Document{NewDocument(v)}, nil
	}
	if !hasCode(err, CodeParseError) {
		// Enforcement faults (duplicate keys, size caps) are real faults,
		// not a sign the input is newline-delimited.
		return nil, err
	}
	var docs []Document
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lv, lerr := parseBytes([]byte(line), info, opt)
		if lerr != nil {
			return nil, lerr
		}
		docs = append(docs, NewDocument(lv))
	}
	return docs, nil
}

// drainClose reads rc to completion and closes it exactly once, surfacing
// the read error first and the close error otherwise. limit > 0 caps the
// accepted input size.
func drainClose(rc io.ReadCloser, limit int64) ([]byte, error) {
	var r io.Reader = rc
	if limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	data, rerr := io.ReadAll(r)
	cerr := rc.Close()
	if rerr != nil {
		return nil, singleIssue(CodeParseError, rerr.Error())
	}
	if cerr != nil {
		return nil, singleIssue(CodeParseError, cerr.Error())
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return data, nil
}

func hasCode(err error, code string) bool {
	ii, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range ii {
		if it.Code == code {
			return true
		}
	}
	return false
}
