package jarkup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jarkup"
)

func TestKinds(t *testing.T) {
	assert.Len(t, jarkup.Kinds(), 21)
	assert.Equal(t, []jarkup.Kind{jarkup.KindText, jarkup.KindIcon}, jarkup.InlineKinds())
	assert.Len(t, jarkup.BlockKinds(), 19)
	assert.True(t, jarkup.KindIcon.Inline())
	assert.False(t, jarkup.KindTableCell.Inline())
	assert.False(t, jarkup.Kind("Nope").Known())
}

func TestNewComponent(t *testing.T) {
	for _, k := range jarkup.Kinds() {
		c, ok := jarkup.NewComponent(k)
		require.True(t, ok, k)
		assert.Equal(t, k, c.Kind())
		assert.Equal(t, k.Inline(), c.Inline())
		assert.Empty(t, c.NodeID())
		switch c.(type) {
		case jarkup.InlineComponent:
			assert.True(t, k.Inline())
		case jarkup.BlockComponent:
			assert.False(t, k.Inline())
		default:
			t.Fatalf("%s is in neither union", k)
		}
	}
	_, ok := jarkup.NewComponent("Nope")
	assert.False(t, ok)
}

func TestEnums(t *testing.T) {
	for n := 1; n <= 6; n++ {
		l, err := jarkup.HeadingLevelFromInt(n)
		require.NoError(t, err)
		assert.Equal(t, n, l.Int())
	}
	_, err := jarkup.HeadingLevelFromInt(0)
	assert.Error(t, err)
	_, err = jarkup.HeadingLevelFromInt(7)
	assert.Error(t, err)
	assert.Equal(t, "h3", jarkup.H3.String())

	s, ok := jarkup.ParseListStyle("ordered")
	assert.True(t, ok)
	assert.Equal(t, jarkup.ListOrdered, s)
	_, ok = jarkup.ParseListStyle("Ordered")
	assert.False(t, ok)

	for _, name := range []string{"note", "tip", "important", "warning", "caution"} {
		ct, ok := jarkup.ParseCalloutType(name)
		require.True(t, ok, name)
		assert.Equal(t, name, ct.String())
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := jarkup.Issues{
		{Path: "/a", Code: jarkup.CodeInvalidType},
		{Path: "/b", Code: jarkup.CodeUnknownKey},
		{Path: "/c", Code: jarkup.CodeRequired},
		{Path: "/d", Code: jarkup.CodeNoMatch},
	}
	assert.Equal(t, "invalid_type at /a; unknown_key at /b; required at /c; ... (total 4)", iss.Error())
	assert.True(t, iss.Has(jarkup.CodeNoMatch))
	_, ok := iss.First(jarkup.CodeTooDeep)
	assert.False(t, ok)
	assert.Equal(t, "", jarkup.Issues(nil).Error())
}
