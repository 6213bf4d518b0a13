package yamlsrc

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scalars(t *testing.T) {
	v, err := Decode([]byte("a: 1\nb: 1.5\nc: true\nd: ~\ne: text\nf: [x, 2]\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": int64(1), "b": 1.5, "c": true, "d": nil, "e": "text", "f": []any{"x", int64(2)},
	}, v)
}

func TestDecode_Aliases(t *testing.T) {
	v, err := Decode([]byte("base: &b {type: Divider}\nuse: *b\n"), Options{})
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, m["base"], m["use"])
}

func TestDecode_Duplicates(t *testing.T) {
	src := []byte("root:\n  k: 1\n  k: 2\n")
	_, err := Decode(src, Options{RejectDuplicates: true})
	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup), "%v", err)
	assert.Equal(t, "k", dup.Key)
	assert.Equal(t, "/root", dup.Path)
	assert.Equal(t, 2, dup.FirstLine)
	assert.Equal(t, 3, dup.Line)

	v, err := Decode(src, Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(map[string]any)["root"].(map[string]any)["k"])
}

func TestDecode_Depth(t *testing.T) {
	_, err := Decode([]byte("[[[1]]]"), Options{MaxDepth: 2})
	var deep *DepthError
	require.True(t, errors.As(err, &deep), "%v", err)
	assert.Equal(t, "/0/0", deep.Path)

	_, err = Decode([]byte("[[[1]]]"), Options{MaxDepth: 3})
	require.NoError(t, err)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(nil, Options{})
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestEncode(t *testing.T) {
	out, err := Encode([]any{map[string]any{"type": "Divider", "inline": false}})
	require.NoError(t, err)
	assert.Equal(t, "- inline: false\n  type: Divider\n", string(out))
}

// laughs builds nested aliases that expand to 10^levels scalars.
func laughs(levels int) []byte {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i < levels; i++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", i-1), 10), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}
	return []byte(b.String())
}

func TestDecode_AliasExpansionBounded(t *testing.T) {
	_, err := Decode(laughs(7), Options{})
	var big *SizeError
	require.True(t, errors.As(err, &big), "%v", err)
	assert.True(t, big.Alias)

	_, err = Decode(laughs(2), Options{})
	require.NoError(t, err)
}

func TestDecode_MaxValues(t *testing.T) {
	src := []byte("[a, b, c, d]")
	_, err := Decode(src, Options{MaxValues: 5})
	require.NoError(t, err)

	_, err = Decode(src, Options{MaxValues: 4})
	var big *SizeError
	require.True(t, errors.As(err, &big), "%v", err)
	assert.False(t, big.Alias)
	assert.Equal(t, "/3", big.Path)
	assert.Equal(t, int64(4), big.Max)
}
