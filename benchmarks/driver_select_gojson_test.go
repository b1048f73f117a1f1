//go:build gojson

package jsonshape_test

import (
	jsonshape "github.com/hadstj/jsonshape"
	drv "github.com/hadstj/jsonshape/source/gojson"
)

func init() {
	jsonshape.SetDriver(drv.Driver())
}
