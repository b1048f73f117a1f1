package jsonshape_test

import (
	"strings"
	"testing"

	jsonshape "github.com/hadstj/jsonshape"
)

func TestParse_DuplicateKey_Error(t *testing.T) {
	opt := jsonshape.LoadOpt{Strictness: jsonshape.Strictness{OnDuplicateKey: jsonshape.Error}}
	_, err := jsonshape.Parse(`{"a":1,"a":2}`, "", opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	iss, ok := jsonshape.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got: %v", err)
	}
	if len(iss) == 0 || iss[0].Code != jsonshape.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key issue, got: %v", iss)
	}
	if iss[0].Path != "/a" {
		t.Fatalf("expected path=/a, got: %s", iss[0].Path)
	}
}

func TestParse_DuplicateKey_NestedPath(t *testing.T) {
	opt := jsonshape.LoadOpt{Strictness: jsonshape.Strictness{OnDuplicateKey: jsonshape.Error}}
	_, err := jsonshape.Parse(`[{"a":1,"a":2}]`, "", opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	iss, ok := jsonshape.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path != "/0/a" {
		t.Fatalf("expected path=/0/a, got: %s", iss[0].Path)
	}
}

func TestParse_DuplicateKey_WarnCollectsAndSucceeds(t *testing.T) {
	var seen []jsonshape.Issue
	opt := jsonshape.LoadOpt{
		Strictness: jsonshape.Strictness{OnDuplicateKey: jsonshape.Warn},
		OnIssue:    func(i jsonshape.Issue) { seen = append(seen, i) },
	}
	v, err := jsonshape.Parse(`{"a":1,"a":2}`, "", opt)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := v.(jsonshape.Object)
	if len(obj) != 1 || obj[0].Value != jsonshape.Number(2) {
		t.Fatalf("expected last occurrence to win, got %#v", obj)
	}
	if len(seen) != 1 || seen[0].Code != jsonshape.CodeDuplicateKey || seen[0].Path != "/a" {
		t.Fatalf("expected one duplicate_key warning at /a, got: %v", seen)
	}
}

func TestParse_MaxDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	opt := jsonshape.LoadOpt{MaxDepth: 2}
	_, err := jsonshape.Parse(`{"a":{"b":{"c":1}}}`, "", opt)
	if err == nil {
		t.Fatalf("expected error for max depth exceeded")
	}
	iss, ok := jsonshape.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != jsonshape.CodeParseError {
		t.Fatalf("expected parse_error issue, got: %v", err)
	}
	if iss[0].Path != "/a/b" {
		t.Fatalf("expected path=/a/b for max depth, got: %s", iss[0].Path)
	}
}

func TestParse_MaxDepth_WithinLimit(t *testing.T) {
	opt := jsonshape.LoadOpt{MaxDepth: 3}
	if _, err := jsonshape.Parse(`{"a":{"b":{"c":1}}}`, "", opt); err != nil {
		t.Fatalf("expected success at the limit, got: %v", err)
	}
}

func TestParse_MaxBytes_Exceeded(t *testing.T) {
	opt := jsonshape.LoadOpt{MaxBytes: 4}
	_, err := jsonshape.Parse(`{"aaaa":1}`, "", opt)
	if err == nil {
		t.Fatalf("expected error for max bytes exceeded")
	}
	iss, ok := jsonshape.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != jsonshape.CodeTruncated {
		t.Fatalf("expected truncated issue, got: %v", err)
	}
}

func TestLoad_MaxBytes_StopsReading(t *testing.T) {
	// The reader is longer than the cap; Load must fail without draining it.
	r := strings.NewReader(`[` + strings.Repeat(`"x",`, 1024) + `"x"]`)
	opt := jsonshape.LoadOpt{MaxBytes: 16}
	_, err := jsonshape.Load(r, "", opt)
	if err == nil {
		t.Fatalf("expected error for max bytes exceeded")
	}
	iss, ok := jsonshape.AsIssues(err)
	if !ok || iss[0].Code != jsonshape.CodeTruncated {
		t.Fatalf("expected truncated issue, got: %v", err)
	}
	if r.Len() == 0 {
		t.Fatalf("expected reader to retain unread bytes")
	}
}

func TestParse_LastOptionWins(t *testing.T) {
	strict := jsonshape.LoadOpt{Strictness: jsonshape.Strictness{OnDuplicateKey: jsonshape.Error}}
	lax := jsonshape.LoadOpt{}
	if _, err := jsonshape.Parse(`{"a":1,"a":2}`, "", strict, lax); err != nil {
		t.Fatalf("expected the last option set to win, got: %v", err)
	}
}
