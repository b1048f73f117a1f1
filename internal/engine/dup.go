package engine

import "io"

// DetectDuplicateKeys drains src and reports every duplicated object key as
// a SimpleIssue. maxIssues > 0 caps the report, appending a final
// "truncated" marker; maxIssues <= 0 means unlimited. A malformed input is
// reported as a trailing parse_error issue rather than an error return.
func DetectDuplicateKeys(src TokenSource, maxIssues int) []SimpleIssue {
	var issues []SimpleIssue
	full := false
	sink := func(si SimpleIssue) {
		if full {
			return
		}
		issues = append(issues, si)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
			full = true
		}
	}
	wrapped := WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupWarn, IssueSink: sink})
	for {
		_, err := wrapped.NextToken()
		if err == io.EOF {
			return issues
		}
		if err != nil {
			issues = append(issues, SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error()})
			return issues
		}
		if full {
			return issues
		}
	}
}
