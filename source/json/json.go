// Package json adapts the standard library JSON decoder into an
// engine.TokenSource. It is the default tokenizer for document loading.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/hadstj/jsonshape/internal/engine"
)

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
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.push(kindObject)
			return s.emit(eng.Token{Kind: eng.KindBeginObject}), nil
		case '}':
			s.pop()
			return s.emitValue(eng.Token{Kind: eng.KindEndObject}), nil
		case '[':
			s.push(kindArray)
			return s.emit(eng.Token{Kind: eng.KindBeginArray}), nil
		default: // ']'
			s.pop()
			return s.emitValue(eng.Token{Kind: eng.KindEndArray}), nil
		}
	case string:
		if top := s.top(); top != nil && top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return s.emit(eng.Token{Kind: eng.KindKey, String: v}), nil
		}
		return s.emitValue(eng.Token{Kind: eng.KindString, String: v}), nil
	case bool:
		return s.emitValue(eng.Token{Kind: eng.KindBool, Bool: v}), nil
	case json.Number:
		return s.emitValue(eng.Token{Kind: eng.KindNumber, Number: string(v)}), nil
	case float64:
		// Only reachable when UseNumber is off; kept for safety.
		return s.emitValue(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}), nil
	default: // nil
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

// emitValue emits a completed value token and flips the enclosing object
// back to expecting a key.
func (s *source) emitValue(t eng.Token) eng.Token {
	if top := s.top(); top != nil && top.kind == kindObject && !top.expectingKey {
		top.expectingKey = true
	}
	return s.emit(t)
}
