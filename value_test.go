package jsonshape_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	jsonshape "github.com/hadstj/jsonshape"
)

func TestObject_Lookup(t *testing.T) {
	obj := jsonshape.Object{
		jsonshape.Field("id", jsonshape.Number(7)),
		jsonshape.Field("name", jsonshape.String("ada")),
	}
	v, ok := obj.Lookup("name")
	if !ok || v != jsonshape.String("ada") {
		t.Fatalf("expected name=ada, got %#v ok=%v", v, ok)
	}
	if _, ok := obj.Lookup("missing"); ok {
		t.Fatalf("expected missing lookup to fail")
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	cases := []string{
		`null`,
		`true`,
		`-12`,
		`1.5`,
		`"he said \"hi\"\n"`,
		`[]`,
		`[1,[2,null],"x"]`,
		`{}`,
		`{"b":1,"a":{"c":[true]}}`,
	}
	for _, text := range cases {
		v, err := jsonshape.Parse(text, "")
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := jsonshape.EncodeJSON(v); got != text {
			t.Fatalf("round trip of %q: got %q", text, got)
		}
	}
}

func TestEncodeJSON_PreservesMemberOrder(t *testing.T) {
	obj := jsonshape.Object{
		jsonshape.Field("z", jsonshape.Number(1)),
		jsonshape.Field("a", jsonshape.Number(2)),
	}
	if got, want := jsonshape.EncodeJSON(obj), `{"z":1,"a":2}`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEncodeJSON_StringEscapes(t *testing.T) {
	v := jsonshape.String("tab\there \x01 and \\ \"q\"")
	want := `"tab\there \u0001 and \\ \"q\""`
	if got := jsonshape.EncodeJSON(v); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEncodeJSON_NonFiniteFloats(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := jsonshape.EncodeJSON(jsonshape.Float(f)); got != "null" {
			t.Fatalf("expected null for %v, got %s", f, got)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := jsonshape.WriteJSON(&buf, jsonshape.Array{jsonshape.Bool(true)}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if buf.String() != `[true]` {
		t.Fatalf("expected [true], got %s", buf.String())
	}
}

func TestMarshalJSON_Interop(t *testing.T) {
	// Values embedded in ordinary structs must encode as JSON values,
	// not as Go struct/slice internals.
	payload := struct {
		Meta jsonshape.Value `json:"meta"`
		Gone jsonshape.Value `json:"gone"`
	}{
		Meta: jsonshape.Object{jsonshape.Field("k", jsonshape.String("v"))},
		Gone: jsonshape.Null{},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"meta":{"k":"v"},"gone":null}`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestKind_Names(t *testing.T) {
	cases := []struct {
		v    jsonshape.Value
		want jsonshape.Kind
	}{
		{jsonshape.Null{}, jsonshape.KindNull},
		{jsonshape.Bool(true), jsonshape.KindBool},
		{jsonshape.Number(1), jsonshape.KindNumber},
		{jsonshape.Float(1), jsonshape.KindFloat},
		{jsonshape.String(""), jsonshape.KindString},
		{jsonshape.Array{}, jsonshape.KindArray},
		{jsonshape.Object{}, jsonshape.KindObject},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.want {
			t.Fatalf("%#v: expected kind %v, got %v", tc.v, tc.want, tc.v.Kind())
		}
	}
}
