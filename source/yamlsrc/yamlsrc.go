// Package yamlsrc reads YAML documents into the JSON-like generic values the
// jarkup decoder consumes (map[string]any, []any, string, bool, int64,
// float64, nil) and writes them back out.
package yamlsrc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options controls the node walk.
type Options struct {
	// RejectDuplicates fails on a repeated mapping key; otherwise the last
	// value wins.
	RejectDuplicates bool
	// MaxDepth bounds mapping/sequence nesting (<=0 disables).
	MaxDepth int
	// MaxValues bounds the values produced, alias expansions included
	// (<=0 disables).
	MaxValues int64
}

// Values produced through aliases may not exceed aliasRatio times the
// document's own node count, nor minAliasBudget when that is larger.
const (
	aliasRatio     = 10
	minAliasBudget = 10000
)

// DuplicateKeyError reports a duplicate key with both positions.
type DuplicateKeyError struct {
	Path      string
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// DepthError reports nesting beyond Options.MaxDepth.
type DepthError struct {
	Path string
	Line int
	Max  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("YAML nesting exceeds %d at line %d", e.Max, e.Line)
}

// SizeError reports a document that expands to too many values, either past
// Options.MaxValues or through excessive alias expansion.
type SizeError struct {
	Path  string
	Line  int
	Max   int64
	Alias bool
}

func (e *SizeError) Error() string {
	if e.Alias {
		return fmt.Sprintf("YAML alias expansion exceeds %d values at line %d", e.Max, e.Line)
	}
	return fmt.Sprintf("YAML document exceeds %d values at line %d", e.Max, e.Line)
}

// ErrNoDocument is returned when the input holds no YAML document.
var ErrNoDocument = errors.New("yamlsrc: empty input")

// Read decodes the first YAML document of r.
func Read(r io.Reader, opt Options) (any, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	w := &walker{opt: opt, aliasLimit: max(minAliasBudget, aliasRatio*countNodes(&root))}
	return w.value(&root, "", 0)
}

// Decode is Read over a byte slice.
func Decode(data []byte, opt Options) (any, error) {
	return Read(bytes.NewReader(data), opt)
}

// Encode renders v as YAML with two-space indentation.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type walker struct {
	opt        Options
	values     int64
	aliased    int64
	aliasLimit int64
	inAlias    int
}

// countNodes counts the nodes written in the document, without following
// aliases.
func countNodes(n *yaml.Node) int64 {
	c := int64(1)
	for _, ch := range n.Content {
		c += countNodes(ch)
	}
	return c
}

// produce charges one value against the budgets.
func (w *walker) produce(n *yaml.Node, at string) error {
	w.values++
	if w.opt.MaxValues > 0 && w.values > w.opt.MaxValues {
		return &SizeError{Path: pointer(at), Line: n.Line, Max: w.opt.MaxValues}
	}
	if w.inAlias > 0 {
		w.aliased++
		if w.aliased > w.aliasLimit {
			return &SizeError{Path: pointer(at), Line: n.Line, Max: w.aliasLimit, Alias: true}
		}
	}
	return nil
}

func (w *walker) value(n *yaml.Node, at string, depth int) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.value(n.Content[0], at, depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, nil
		}
		w.inAlias++
		defer func() { w.inAlias-- }()
		return w.value(n.Alias, at, depth)
	case yaml.MappingNode:
		if err := w.deeper(n, at, depth); err != nil {
			return nil, err
		}
		if err := w.produce(n, at); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			key := k.Value
			if pos, dup := first[key]; dup && w.opt.RejectDuplicates {
				return nil, &DuplicateKeyError{Path: pointer(at), Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := w.value(v, at+"/"+escape(key), depth+1)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		if err := w.deeper(n, at, depth); err != nil {
			return nil, err
		}
		if err := w.produce(n, at); err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := w.value(c, at+"/"+strconv.Itoa(i), depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		if err := w.produce(n, at); err != nil {
			return nil, err
		}
		return scalar(n), nil
	default:
		return nil, nil
	}
}

func (w *walker) deeper(n *yaml.Node, at string, depth int) error {
	if w.opt.MaxDepth > 0 && depth+1 > w.opt.MaxDepth {
		return &DepthError{Path: pointer(at), Line: n.Line, Max: w.opt.MaxDepth}
	}
	return nil
}

func scalar(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	}
	return n.Value
}

func pointer(at string) string {
	if at == "" {
		return "/"
	}
	return at
}

func escape(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
