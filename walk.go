package jarkup

// Children returns the direct child components of c in slot order. Kinds
// without slots, and nil, have no children.
func Children(c Component) []Component {
	if c == nil {
		return nil
	}
	s, ok := registry.byKind[c.Kind()]
	if !ok {
		return nil
	}
	return s.children(c)
}

// WalkFunc is called for each visited component. depth is 0 for the node
// passed to Walk. Returning false skips the node's children.
type WalkFunc func(c Component, depth int) bool

// Walk visits c and its descendants depth-first in pre-order.
func Walk(c Component, fn WalkFunc) {
	walk(c, 0, fn)
}

// WalkDocument walks every root of doc in order.
func WalkDocument(doc Document, fn WalkFunc) {
	for _, c := range doc {
		walk(c, 0, fn)
	}
}

func walk(c Component, depth int, fn WalkFunc) {
	if c == nil || !fn(c, depth) {
		return
	}
	for _, child := range Children(c) {
		walk(child, depth+1, fn)
	}
}

// Stats summarizes a tree.
type Stats struct {
	Nodes    int
	MaxDepth int // root components have depth 1
	ByKind   map[Kind]int
}

// DocumentStats counts the components of doc.
func DocumentStats(doc Document) Stats {
	st := Stats{ByKind: map[Kind]int{}}
	WalkDocument(doc, func(c Component, depth int) bool {
		st.Nodes++
		st.ByKind[c.Kind()]++
		if depth+1 > st.MaxDepth {
			st.MaxDepth = depth + 1
		}
		return true
	})
	return st
}
