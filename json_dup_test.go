package jsonshape

import "testing"

func TestDetectDuplicateKeysBytes_NoDup(t *testing.T) {
	iss := DetectDuplicateKeysBytes([]byte(`{"a":1,"b":2}`), -1)
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectDuplicateKeysBytes_WithDup(t *testing.T) {
	iss := DetectDuplicateKeysBytes([]byte(`{"a":1,"a":2}`), -1)
	if len(iss) == 0 {
		t.Fatalf("expected duplicate_key issue")
	}
	if iss[0].Code != CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %s", iss[0].Code)
	}
	if iss[0].Path != "/a" {
		t.Fatalf("expected path=/a, got %s", iss[0].Path)
	}
}

func TestDetectDuplicateKeysBytes_MaxIssuesCaps(t *testing.T) {
	js := []byte(`{"a":1,"a":2,"a":3,"b":1,"b":2}`)
	iss := DetectDuplicateKeysBytes(js, 1)
	// One reported duplicate plus the trailing truncated marker.
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(iss), iss)
	}
	if iss[0].Code != CodeDuplicateKey || iss[1].Code != CodeTruncated {
		t.Fatalf("expected [duplicate_key truncated], got: %v", iss)
	}
}

func TestDetectDuplicateKeysBytes_MalformedInput(t *testing.T) {
	iss := DetectDuplicateKeysBytes([]byte(`{"a":`), -1)
	if len(iss) == 0 || iss[len(iss)-1].Code != CodeParseError {
		t.Fatalf("expected trailing parse_error issue, got: %v", iss)
	}
}
