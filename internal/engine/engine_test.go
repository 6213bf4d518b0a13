package engine

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource replays a fixed token sequence.
type sliceSource struct {
	toks []Token
	i    int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.i >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.i * 10) }

func obj(members ...Token) []Token {
	out := []Token{{Kind: KindBeginObject}}
	out = append(out, members...)
	return append(out, Token{Kind: KindEndObject})
}

func key(k string) Token { return Token{Kind: KindKey, String: k} }
func str(s string) Token { return Token{Kind: KindString, String: s} }

func TestDecodeAnyFromSource(t *testing.T) {
	toks := obj(
		key("type"), str("List"),
		key("inline"), Token{Kind: KindBool},
		key("n"), Token{Kind: KindNumber, Number: "1.5"},
		key("x"), Token{Kind: KindNull},
		key("slots"), Token{Kind: KindBeginArray}, Token{Kind: KindEndArray},
	)
	v, err := DecodeAnyFromSource(&sliceSource{toks: toks})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type": "List", "inline": false, "n": json.Number("1.5"), "x": nil, "slots": []any{},
	}, v)
}

func TestDecodeAnyFromSource_Errors(t *testing.T) {
	_, err := DecodeAnyFromSource(&sliceSource{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	trailing := append(obj(), Token{Kind: KindNull})
	_, err = DecodeAnyFromSource(&sliceSource{toks: trailing})
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "parse_error", ie.Code)
}

func TestEnforce_Duplicates(t *testing.T) {
	toks := obj(key("props"), Token{Kind: KindBeginObject}, key("a"), str("1"), key("a"), str("2"), Token{Kind: KindEndObject})
	src := WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{RejectDuplicates: true})
	_, err := DecodeAnyFromSource(src)
	var ie IssueError
	require.True(t, errors.As(err, &ie), "%v", err)
	assert.Equal(t, "duplicate_key", ie.Code)
	assert.Equal(t, "/props/a", ie.Path)

	v, err := DecodeAnyFromSource(&sliceSource{toks: toks})
	require.NoError(t, err)
	assert.Equal(t, "2", v.(map[string]any)["props"].(map[string]any)["a"])
}

func TestEnforce_DepthAndBytes(t *testing.T) {
	toks := []Token{{Kind: KindBeginArray}, {Kind: KindBeginArray}, {Kind: KindBeginArray}, {Kind: KindEndArray}, {Kind: KindEndArray}, {Kind: KindEndArray}}
	_, err := DecodeAnyFromSource(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "too_deep", ie.Code)
	assert.Equal(t, "/0/0", ie.Path)

	_, err = DecodeAnyFromSource(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 3}))
	require.NoError(t, err)

	_, err = DecodeAnyFromSource(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxBytes: 25}))
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "too_big", ie.Code)
}

func TestWrapWithEnforcement_Disabled(t *testing.T) {
	src := &sliceSource{}
	assert.Same(t, src, WrapWithEnforcement(src, EnforceOptions{}))
}

func TestFramer(t *testing.T) {
	var f Framer
	f.Begin(true)
	assert.Equal(t, KindKey, f.String())
	assert.Equal(t, KindString, f.String())
	assert.Equal(t, KindKey, f.String())
	f.Begin(false)
	assert.Equal(t, KindString, f.String())
	f.End()
	assert.Equal(t, KindKey, f.String())
}
