package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Modes(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("prod", &buf)
	require.NoError(t, err)
	l.With("file", "doc.json").Info("decoded", "nodes", 3)
	l.Debug("hidden")
	l.Sync()
	assert.Contains(t, buf.String(), `"msg":"decoded"`)
	assert.Contains(t, buf.String(), `"file":"doc.json"`)
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	l, err = New("dev", &buf)
	require.NoError(t, err)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	l, err = New("off", &buf)
	require.NoError(t, err)
	l.Error("dropped")
	assert.Empty(t, buf.String())
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := New("verbose", &bytes.Buffer{})
	require.Error(t, err)
}
