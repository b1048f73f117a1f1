package jsonshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeParseError reports malformed JSON text, or a depth cap hit while
	// tokenizing.
	CodeParseError = "parse_error"
	// CodeInvalidType reports a shape mismatch: a dispatch primitive invoked
	// on a node whose runtime shape disagrees with the inferred schema.
	CodeInvalidType = "invalid_type"
	// CodeNoMatch reports a singleton dispatch that found no element for the
	// requested tag.
	CodeNoMatch = "no_match"
	// CodeAmbiguousMatch reports a singleton dispatch that found two or more
	// elements for the requested tag.
	CodeAmbiguousMatch = "ambiguous_match"
	// CodeUnknownTag reports an unrecognized type tag code.
	CodeUnknownTag = "unknown_tag"
	// CodeRequired reports strict property access on a missing or null member.
	CodeRequired = "required"
	// CodeDuplicateKey reports a duplicated object key under strict loading.
	CodeDuplicateKey = "duplicate_key"
	// CodeTruncated reports input exceeding the configured size cap.
	CodeTruncated = "truncated"
	// CodeInvalidCulture reports an unrecognized locale identifier.
	CodeInvalidCulture = "invalid_culture"
)

// Issue represents a single fault entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of faults that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, pointerOrRoot(it.Path))
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg, Offset: -1})
}
