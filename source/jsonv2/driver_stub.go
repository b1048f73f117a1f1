//go:build !jsonv2

package jsonv2

import (
	"io"

	jsonshape "github.com/hadstj/jsonshape"
	jsonsrc "github.com/hadstj/jsonshape/source/json"
)

// Driver returns a fallback driver when the jsonv2 build tag is not enabled.
// It delegates to the default encoding/json-based source.
func Driver() jsonshape.Driver { return driverStub{} }

type driverStub struct{}

func (driverStub) NewReader(r io.Reader) jsonshape.Source {
	return jsonshape.SourceFromEngine(jsonsrc.NewReader(r))
}

func (driverStub) NewBytes(b []byte) jsonshape.Source {
	return jsonshape.SourceFromEngine(jsonsrc.NewBytes(b))
}

func (driverStub) Name() string { return "encoding/json (jsonv2 stub)" }
