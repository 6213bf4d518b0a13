package jarkup

// Kind names a concrete component type. It is also the wire tag carried in
// the `type` field.
type Kind string

const (
	KindText        Kind = "Text"
	KindIcon        Kind = "Icon"
	KindHeading     Kind = "Heading"
	KindParagraph   Kind = "Paragraph"
	KindListItem    Kind = "ListItem"
	KindList        Kind = "List"
	KindBlockQuote  Kind = "BlockQuote"
	KindCallout     Kind = "Callout"
	KindDivider     Kind = "Divider"
	KindToggle      Kind = "Toggle"
	KindBookmark    Kind = "Bookmark"
	KindFile        Kind = "File"
	KindImage       Kind = "Image"
	KindCodeBlock   Kind = "CodeBlock"
	KindKatex       Kind = "Katex"
	KindTable       Kind = "Table"
	KindTableRow    Kind = "TableRow"
	KindTableCell   Kind = "TableCell"
	KindColumnList  Kind = "ColumnList"
	KindColumn      Kind = "Column"
	KindUnsupported Kind = "Unsupported"
)

// Inline reports whether k belongs to the InlineComponent union.
func (k Kind) Inline() bool {
	s, ok := registry.byKind[k]
	return ok && s.inline
}

// Known reports whether k is a registered kind.
func (k Kind) Known() bool {
	_, ok := registry.byKind[k]
	return ok
}

// Component is any node of a document tree. Concrete kinds are value types
// (Text, Heading, Table, ...); a tree owns its children exclusively and is
// never mutated after construction.
//
// A nil slot and an empty slot are the same value: both encode as [] (or are
// omitted for optional slots) and [] decodes to nil. Compare decoded trees
// with that in mind, since reflect.DeepEqual tells the two apart.
type Component interface {
	Kind() Kind
	// Inline is the constant `inline` literal of the kind.
	Inline() bool
	// NodeID returns the optional node id ("" when unset).
	NodeID() string
	component()
}

// InlineComponent is a Component embedded in running text: Text or Icon.
type InlineComponent interface {
	Component
	inlineComponent()
}

// BlockComponent is a structural Component: every kind except Text and Icon.
type BlockComponent interface {
	Component
	blockComponent()
}

// Document is an ordered sequence of root components.
type Document []Component

// inlineNode is embedded by the inline kinds to join the InlineComponent union.
type inlineNode struct{}

func (inlineNode) Inline() bool     { return true }
func (inlineNode) component()       {}
func (inlineNode) inlineComponent() {}

// blockNode is embedded by the block kinds to join the BlockComponent union.
type blockNode struct{}

func (blockNode) Inline() bool    { return false }
func (blockNode) component()      {}
func (blockNode) blockComponent() {}

// NewComponent returns the zero value of kind k. Zero values are legal
// documents: required strings are empty, enums hold their default.
func NewComponent(k Kind) (Component, bool) {
	s, ok := registry.byKind[k]
	if !ok {
		return nil, false
	}
	return s.zero(), true
}

// Kinds lists every registered kind, inline kinds first.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry.order))
	for _, s := range registry.order {
		out = append(out, s.kind)
	}
	return out
}

// InlineKinds lists the kinds of the InlineComponent union.
func InlineKinds() []Kind { return kindsWhere(true) }

// BlockKinds lists the kinds of the BlockComponent union.
func BlockKinds() []Kind { return kindsWhere(false) }

func kindsWhere(inline bool) []Kind {
	var out []Kind
	for _, s := range registry.order {
		if s.inline == inline {
			out = append(out, s.kind)
		}
	}
	return out
}
