package jsonshape_test

import (
	"testing"

	jsonshape "github.com/hadstj/jsonshape"
)

func TestParseTagCode_Vocabulary(t *testing.T) {
	cases := []struct {
		code string
		want jsonshape.Tag
	}{
		{"b", jsonshape.Tag{Kind: jsonshape.TagBool}},
		{"bool", jsonshape.Tag{Kind: jsonshape.TagBool}},
		{"Boolean", jsonshape.Tag{Kind: jsonshape.TagBool}},
		{"n", jsonshape.Tag{Kind: jsonshape.TagNumber}},
		{"NUM", jsonshape.Tag{Kind: jsonshape.TagNumber}},
		{"number", jsonshape.Tag{Kind: jsonshape.TagNumber}},
		{"s", jsonshape.Tag{Kind: jsonshape.TagString}},
		{"str", jsonshape.Tag{Kind: jsonshape.TagString}},
		{"string", jsonshape.Tag{Kind: jsonshape.TagString}},
		{"c", jsonshape.Tag{Kind: jsonshape.TagCollection}},
		{"coll", jsonshape.Tag{Kind: jsonshape.TagCollection}},
		{"collection", jsonshape.Tag{Kind: jsonshape.TagCollection}},
		{"array", jsonshape.Tag{Kind: jsonshape.TagCollection}},
		{"r", jsonshape.Tag{Kind: jsonshape.TagRecord}},
		{"rec", jsonshape.Tag{Kind: jsonshape.TagRecord}},
		{"record", jsonshape.Tag{Kind: jsonshape.TagRecord}},
		{"r@Author", jsonshape.Tag{Kind: jsonshape.TagRecord, Name: "Author"}},
		{"RECORD@Author", jsonshape.Tag{Kind: jsonshape.TagRecord, Name: "Author"}},
	}
	for _, tc := range cases {
		tag, err := jsonshape.ParseTagCode(tc.code)
		if err != nil {
			t.Fatalf("ParseTagCode(%q): %v", tc.code, err)
		}
		if tag != tc.want {
			t.Fatalf("ParseTagCode(%q): expected %+v, got %+v", tc.code, tc.want, tag)
		}
	}
}

func TestParseTagCode_NameCasePreserved(t *testing.T) {
	tag, err := jsonshape.ParseTagCode("r@MiXeD")
	if err != nil {
		t.Fatalf("ParseTagCode: %v", err)
	}
	if tag.Name != "MiXeD" {
		t.Fatalf("expected the record name kept verbatim, got %q", tag.Name)
	}
}

func TestParseTagCode_Unknown(t *testing.T) {
	for _, code := range []string{"", "x", "recordx", "n n"} {
		_, err := jsonshape.ParseTagCode(code)
		if err == nil {
			t.Fatalf("ParseTagCode(%q): expected error", code)
		}
		iss, ok := jsonshape.AsIssues(err)
		if !ok || len(iss) == 0 || iss[0].Code != jsonshape.CodeUnknownTag {
			t.Fatalf("ParseTagCode(%q): expected unknown_tag issue, got: %v", code, err)
		}
	}
}

func TestTag_CodeRoundTrip(t *testing.T) {
	for _, code := range []string{"b", "n", "s", "c", "r", "r@Author"} {
		tag, err := jsonshape.ParseTagCode(code)
		if err != nil {
			t.Fatalf("ParseTagCode(%q): %v", code, err)
		}
		if got := tag.Code(); got != code {
			t.Fatalf("Code() of %q: got %q", code, got)
		}
	}
}

func TestMatchesTag_Matrix(t *testing.T) {
	values := []jsonshape.Value{
		jsonshape.Null{},
		jsonshape.Bool(true),
		jsonshape.Number(3),
		jsonshape.Float(2.5),
		jsonshape.String("x"),
		jsonshape.Array{},
		jsonshape.Object{},
	}
	// One row per value: expected match result for b, n, s, c, r.
	want := map[jsonshape.Kind][5]bool{
		jsonshape.KindNull:   {false, false, false, false, false},
		jsonshape.KindBool:   {true, false, false, false, false},
		jsonshape.KindNumber: {false, true, false, false, false},
		jsonshape.KindFloat:  {false, true, false, false, false},
		jsonshape.KindString: {false, false, true, false, false},
		jsonshape.KindArray:  {false, false, false, true, false},
		jsonshape.KindObject: {false, false, false, false, true},
	}
	tags := []jsonshape.Tag{
		{Kind: jsonshape.TagBool},
		{Kind: jsonshape.TagNumber},
		{Kind: jsonshape.TagString},
		{Kind: jsonshape.TagCollection},
		{Kind: jsonshape.TagRecord},
	}
	for _, v := range values {
		row := want[v.Kind()]
		for i, tag := range tags {
			if got := jsonshape.MatchesTag(v, tag); got != row[i] {
				t.Fatalf("MatchesTag(%#v, %v): expected %v, got %v", v, tag, row[i], got)
			}
		}
	}
}

func TestMatchesTag_RecordNameIgnored(t *testing.T) {
	obj := jsonshape.Object{jsonshape.Field("a", jsonshape.Number(1))}
	if !jsonshape.MatchesTag(obj, jsonshape.MustParseTagCode("r@Anything")) {
		t.Fatalf("expected record tag to match regardless of name")
	}
}
