package jarkup

import (
	"strconv"
	"strings"
)

// path is a lazily rendered JSON Pointer. Segments link to their parent so
// descending costs one allocation; rendering only happens when an issue is
// reported.
type path struct {
	parent *path
	key    string
	index  int
	isIdx  bool
}

var rootPath *path

func (p *path) field(name string) *path { return &path{parent: p, key: name} }

func (p *path) at(i int) *path { return &path{parent: p, index: i, isIdx: true} }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders the RFC 6901 pointer; the root renders as "/".
func (p *path) Pointer() string {
	if p == nil {
		return "/"
	}
	var parts []string
	for s := p; s != nil; s = s.parent {
		if s.isIdx {
			parts = append(parts, strconv.Itoa(s.index))
		} else {
			parts = append(parts, pointerEscaper.Replace(s.key))
		}
	}
	b := &strings.Builder{}
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}
