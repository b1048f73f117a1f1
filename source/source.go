// Package source switches the process-wide token driver to go-json.
// Import it for its side effect:
//
//	import _ "github.com/hadstj/jsonshape/source"
package source

import (
	jsonshape "github.com/hadstj/jsonshape"
	drvgojson "github.com/hadstj/jsonshape/source/gojson"
)

// init lives in a separate package to avoid an import cycle with the root.
func init() { jsonshape.SetDriver(drvgojson.Driver()) }
