// Package stdjson provides a token driver backed by encoding/json. It
// reports byte offsets, which go-json does not.
package stdjson

import (
	"bytes"
	"encoding/json"
	"io"

	eng "github.com/reoring/jarkup/internal/engine"
)

// Driver is the encoding/json backed JSON driver.
type Driver struct{}

func (Driver) NewReader(r io.Reader) eng.TokenSource { return NewReader(r) }
func (Driver) NewBytes(b []byte) eng.TokenSource     { return NewBytes(b) }
func (Driver) Name() string                          { return "encoding/json" }

type source struct {
	dec    *json.Decoder
	frames eng.Framer
	offset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, offset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.offset = s.dec.InputOffset()
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.frames.Begin(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: s.offset}, nil
		case '}':
			s.frames.End()
			return eng.Token{Kind: eng.KindEndObject, Offset: s.offset}, nil
		case '[':
			s.frames.Begin(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: s.offset}, nil
		case ']':
			s.frames.End()
			return eng.Token{Kind: eng.KindEndArray, Offset: s.offset}, nil
		}
	case string:
		return eng.Token{Kind: s.frames.String(), String: v, Offset: s.offset}, nil
	case bool:
		s.frames.Value()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.offset}, nil
	case json.Number:
		s.frames.Value()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: s.offset}, nil
	}
	s.frames.Value()
	return eng.Token{Kind: eng.KindNull, Offset: s.offset}, nil
}

func (s *source) Location() int64 { return s.offset }
