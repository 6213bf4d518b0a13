package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `[
  {"type":"Heading","inline":false,"props":{"level":2},"slots":{"default":[{"type":"Text","inline":true,"props":{"text":"Title"}}]}},
  {"type":"List","inline":false,"slots":{"default":[
    {"type":"ListItem","inline":false,"slots":{"default":[{"type":"Text","inline":true,"props":{"text":"a"}}]}}
  ]}}
]`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(append(args, "-no-color"), strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestValidate_OK(t *testing.T) {
	code, out, _ := runCLI(t, sampleDoc, "validate")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "<stdin>: ok")
}

func TestValidate_ReportsIssues(t *testing.T) {
	bad := `[{"type":"Heading","inline":false,"props":{"level":7},"slots":{"default":[]}}]`
	code, _, errOut := runCLI(t, bad, "validate")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "out_of_range")
	assert.Contains(t, errOut, "/0/props/level")
}

func TestValidate_Files(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	yml := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(good, []byte(sampleDoc), 0o644))
	require.NoError(t, os.WriteFile(yml, []byte("- type: Divider\n  inline: false\n"), 0o644))

	var out, errOut bytes.Buffer
	code := run([]string{"validate", "-no-color", good, yml}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), good+": ok")
	assert.Contains(t, out.String(), yml+": ok")
}

func TestFmt_CanonicalizesAndAssignsIDs(t *testing.T) {
	code, out, errOut := runCLI(t, sampleDoc, "fmt", "-indent", "0", "-assign-ids")
	require.Equal(t, 0, code, errOut)

	var v []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v, 2)
	for _, root := range v {
		id, _ := root["id"].(string)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
	props := v[0]["props"].(map[string]any)
	_, hasID := props["id"]
	assert.False(t, hasID, "props objects must not get ids")
}

func TestConvert_RoundTrip(t *testing.T) {
	code, yamlOut, errOut := runCLI(t, sampleDoc, "convert", "-to", "yaml")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, yamlOut, "type: Heading")

	code, jsonOut, errOut := runCLI(t, yamlOut, "convert", "-from", "yaml", "-to", "json")
	require.Equal(t, 0, code, errOut)
	_, canonical, _ := runCLI(t, sampleDoc, "fmt")
	assert.JSONEq(t, canonical, jsonOut)
}

func TestSchema(t *testing.T) {
	code, out, _ := runCLI(t, "", "schema")
	require.Equal(t, 0, code)
	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	defs := s["$defs"].(map[string]any)
	assert.Contains(t, defs, "Heading")
	assert.Contains(t, defs, "Component")
}

func TestStats(t *testing.T) {
	code, out, errOut := runCLI(t, sampleDoc, "stats", "-json")
	require.Equal(t, 0, code, errOut)
	var st struct {
		Roots    int            `json:"roots"`
		Nodes    int            `json:"nodes"`
		MaxDepth int            `json:"maxDepth"`
		ByKind   map[string]int `json:"byKind"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 2, st.Roots)
	assert.Equal(t, 5, st.Nodes)
	assert.Equal(t, 3, st.MaxDepth)
	assert.Equal(t, 2, st.ByKind["Text"])
}

func TestUsageErrors(t *testing.T) {
	code, _, _ := runCLI(t, "", "bogus")
	assert.Equal(t, 2, code)
	code, _, errOut := runCLI(t, sampleDoc, "validate", "-driver", "simdjson")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown driver")
}

func TestValidate_StdDriverAndJapanese(t *testing.T) {
	defer runCLI(t, sampleDoc, "validate", "-lang", "en")
	code, _, errOut := runCLI(t, `[{"type":"Nope","inline":false}]`, "validate", "-driver", "encoding/json", "-lang", "ja")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no_match")
	assert.Contains(t, errOut, "どのコンポーネントにも一致しません")
}
