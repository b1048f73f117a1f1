//go:build jsonv2

package jsonshape_test

import (
	jsonshape "github.com/hadstj/jsonshape"
	drv "github.com/hadstj/jsonshape/source/jsonv2"
)

func init() {
	jsonshape.SetDriver(drv.Driver())
}
