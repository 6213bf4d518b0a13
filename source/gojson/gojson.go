// Package gojson provides the default token driver, backed by
// goccy/go-json.
//
// go-json's Decoder.Token skips commas and colons without checking them, so
// the source buffers its input and runs j.Valid before tokenizing. Reader
// input is therefore read in full; a byte cap set through LimitBytes stops
// the read early.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/jarkup/internal/engine"
)

// Driver is the go-json backed JSON driver.
type Driver struct{}

func (Driver) NewReader(r io.Reader) eng.TokenSource { return NewReader(r) }
func (Driver) NewBytes(b []byte) eng.TokenSource     { return NewBytes(b) }
func (Driver) Name() string                          { return "go-json" }

type source struct {
	r      io.Reader
	data   []byte
	loaded bool
	limit  int64
	dec    *j.Decoder
	frames eng.Framer
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource { return &source{r: r} }

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return &source{data: b, loaded: true} }

// LimitBytes caps the input the source accepts; larger input fails with
// too_big before it is tokenized.
func (s *source) LimitBytes(n int64) { s.limit = n }

func (s *source) load() error {
	if !s.loaded {
		r := s.r
		if s.limit > 0 {
			r = io.LimitReader(r, s.limit+1)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		s.data, s.loaded = data, true
	}
	if s.limit > 0 && int64(len(s.data)) > s.limit {
		return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: "too_big", Path: "/", Message: "max bytes exceeded"}}
	}
	if !j.Valid(s.data) {
		return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: "parse_error", Path: "/", Message: "invalid JSON text"}}
	}
	dec := j.NewDecoder(bytes.NewReader(s.data))
	dec.UseNumber()
	s.dec = dec
	return nil
}

func (s *source) NextToken() (eng.Token, error) {
	if s.dec == nil {
		if err := s.load(); err != nil {
			return eng.Token{}, err
		}
	}
	off := s.dec.InputOffset()
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.frames.Begin(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: off}, nil
		case '}':
			s.frames.End()
			return eng.Token{Kind: eng.KindEndObject, Offset: off}, nil
		case '[':
			s.frames.Begin(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: off}, nil
		case ']':
			s.frames.End()
			return eng.Token{Kind: eng.KindEndArray, Offset: off}, nil
		}
	case string:
		return eng.Token{Kind: s.frames.String(), String: v, Offset: off}, nil
	case bool:
		s.frames.Value()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: off}, nil
	case j.Number:
		s.frames.Value()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: off}, nil
	case float64:
		s.frames.Value()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	}
	s.frames.Value()
	return eng.Token{Kind: eng.KindNull, Offset: off}, nil
}

// Location reports the decoder's input offset, or -1 before the first token.
func (s *source) Location() int64 {
	if s.dec == nil {
		return -1
	}
	return s.dec.InputOffset()
}
