package jsonshape

// Package jsonshape provides:
//
// - An ordered, immutable JSON value tree (Value) with a sealed variant set
// - Tag-directed projection helpers bridging dynamic trees to statically shaped accessors
// - Document loading with single-value and newline-delimited fallback modes
// - A stable error model via Issues (JSON Pointer, code, message)
// - Loader enforcement (duplicate keys, depth, size) over a pluggable token driver
//
// Design policy:
// - Keep only public APIs in the root package; put token plumbing under internal/.
// - Place token drivers under source/, locale handling under culture/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  doc, err := jsonshape.ReadDocument(resp.Body, "")
//  rows, err := jsonshape.ConvertArray(doc, jsonshape.UnpackDocument, doc.Packer("/row"), toRow)
//
//  v, err := jsonshape.Parse(`[1, 2.5, "x"]`, "")
//  nums, err := jsonshape.ChildrenByTag(v, "n", jsonshape.Identity, jsonshape.Identity)
