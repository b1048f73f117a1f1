package jsonshape

import (
	"io"

	eng "github.com/hadstj/jsonshape/internal/engine"
)

// DetectDuplicateKeysBytes reports every duplicated object key in a JSON
// byte slice as an Issue carrying the key's JSON Pointer path. maxIssues > 0
// caps the report with a trailing truncated marker. The preflight never
// faults; malformed input surfaces as a trailing parse_error issue.
func DetectDuplicateKeysBytes(data []byte, maxIssues int) Issues {
	return fromEngineIssues(eng.DetectDuplicateKeys(EngineTokenSource(JSONBytes(data)), maxIssues))
}

// DetectDuplicateKeysReader is the io.Reader variant of
// DetectDuplicateKeysBytes. The reader is drained, not closed.
func DetectDuplicateKeysReader(r io.Reader, maxIssues int) Issues {
	return fromEngineIssues(eng.DetectDuplicateKeys(EngineTokenSource(JSONReader(r)), maxIssues))
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message, Offset: -1})
	}
	return iss
}
