//go:build jsonv2

// Package jsonv2 provides a token driver backed by the experimental
// encoding/json/jsontext decoder. Building it requires -tags jsonv2 on a
// toolchain with GOEXPERIMENT=jsonv2; without the tag a stub delegating to
// the default driver is compiled instead.
package jsonv2

import (
	"bytes"
	"encoding/json/jsontext"
	"io"

	jsonshape "github.com/hadstj/jsonshape"
	eng "github.com/hadstj/jsonshape/internal/engine"
)

// Driver returns a jsonshape.Driver backed by encoding/json/jsontext.
func Driver() jsonshape.Driver { return driverV2{} }

type driverV2 struct{}

func (driverV2) NewReader(r io.Reader) jsonshape.Source {
	return jsonshape.SourceFromEngine(NewReader(r))
}
func (driverV2) NewBytes(b []byte) jsonshape.Source {
	return jsonshape.SourceFromEngine(NewBytes(b))
}
func (driverV2) Name() string { return "encoding/json/jsontext" }

// NewReader wraps an io.Reader into an engine.TokenSource over jsontext.
func NewReader(r io.Reader) eng.TokenSource {
	return &source{dec: jsontext.NewDecoder(r), lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource over jsontext.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec        *jsontext.Decoder
	stack      []frame
	lastOffset int64
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.ReadToken()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch tok.Kind() {
	case '{':
		s.push(kindObject)
		return s.emit(eng.Token{Kind: eng.KindBeginObject}), nil
	case '}':
		s.pop()
		return s.emitValue(eng.Token{Kind: eng.KindEndObject}), nil
	case '[':
		s.push(kindArray)
		return s.emit(eng.Token{Kind: eng.KindBeginArray}), nil
	case ']':
		s.pop()
		return s.emitValue(eng.Token{Kind: eng.KindEndArray}), nil
	case '"':
		if top := s.top(); top != nil && top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return s.emit(eng.Token{Kind: eng.KindKey, String: tok.String()}), nil
		}
		return s.emitValue(eng.Token{Kind: eng.KindString, String: tok.String()}), nil
	case 't', 'f':
		return s.emitValue(eng.Token{Kind: eng.KindBool, Bool: tok.Bool()}), nil
	case '0':
		// String() preserves the raw literal for number tokens.
		return s.emitValue(eng.Token{Kind: eng.KindNumber, Number: tok.String()}), nil
	default: // 'n'
		return s.emitValue(eng.Token{Kind: eng.KindNull}), nil
	}
}

func (s *source) Location() int64 { return s.lastOffset }

func (s *source) push(k containerKind) {
	s.stack = append(s.stack, frame{kind: k, expectingKey: k == kindObject})
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

func (s *source) top() *frame {
	if n := len(s.stack); n > 0 {
		return &s.stack[n-1]
	}
	return nil
}

func (s *source) emit(t eng.Token) eng.Token {
	t.Offset = s.lastOffset
	return t
}

func (s *source) emitValue(t eng.Token) eng.Token {
	if top := s.top(); top != nil && top.kind == kindObject && !top.expectingKey {
		top.expectingKey = true
	}
	return s.emit(t)
}
