package jarkup

// ---- headings and text blocks ----

type Heading struct {
	blockNode
	ID    string
	Props HeadingProps
	Slots HeadingSlots
}

type HeadingProps struct {
	Level HeadingLevel
}

type HeadingSlots struct {
	Default []InlineComponent
}

type Paragraph struct {
	blockNode
	ID    string
	Slots ParagraphSlots
}

type ParagraphSlots struct {
	Default []InlineComponent
}

// ---- lists ----

type ListItem struct {
	blockNode
	ID    string
	Slots ListItemSlots
}

type ListItemSlots struct {
	Default []InlineComponent
}

type List struct {
	blockNode
	ID    string
	Props ListProps
	Slots ListSlots
}

type ListProps struct {
	ListStyle ListStyle
}

// ListSlots holds the list entries, normally ListItems but any component
// (for example a nested List) is accepted.
type ListSlots struct {
	Default []Component
}

// ---- containers ----

type BlockQuote struct {
	blockNode
	ID    string
	Props BlockQuoteProps
	Slots BlockQuoteSlots
}

type BlockQuoteProps struct {
	Cite string
}

type BlockQuoteSlots struct {
	Default []Component
}

type Callout struct {
	blockNode
	ID    string
	Props CalloutProps
	Slots CalloutSlots
}

// CalloutProps.Type is emitted as the "type" key inside props; it does not
// clash with the node tag, which lives one level up.
type CalloutProps struct {
	Type CalloutType
}

type CalloutSlots struct {
	Default []Component
}

type Divider struct {
	blockNode
	ID string
}

// Toggle is a collapsible block: Summary is always visible, Default is the
// hidden body.
type Toggle struct {
	blockNode
	ID    string
	Slots ToggleSlots
}

type ToggleSlots struct {
	Default []Component
	Summary []InlineComponent
}

// ---- embeds ----

type Bookmark struct {
	blockNode
	ID    string
	Props BookmarkProps
}

type BookmarkProps struct {
	URL         string
	Title       string
	Description string
	Image       string
}

type File struct {
	blockNode
	ID    string
	Props FileProps
}

type FileProps struct {
	Src  string
	Name string
}

type Image struct {
	blockNode
	ID    string
	Props ImageProps
}

type ImageProps struct {
	Src string
	Alt string
}

type CodeBlock struct {
	blockNode
	ID    string
	Props CodeBlockProps
	Slots CodeBlockSlots
}

type CodeBlockProps struct {
	Code     string
	Language string
}

// CodeBlockSlots.Default holds an optional caption.
type CodeBlockSlots struct {
	Default []InlineComponent
}

type Katex struct {
	blockNode
	ID    string
	Props KatexProps
}

type KatexProps struct {
	Expression string
}

// ---- tables ----

type Table struct {
	blockNode
	ID    string
	Props TableProps
	Slots TableSlots
}

type TableProps struct {
	HasColumnHeader bool
	HasRowHeader    bool
	Caption         string
}

// TableSlots holds header and body rows. Header is omitted on the wire when
// empty.
type TableSlots struct {
	Header []Component
	Body   []Component
}

type TableRow struct {
	blockNode
	ID    string
	Slots TableRowSlots
}

type TableRowSlots struct {
	Default []TableCell
}

type TableCell struct {
	blockNode
	ID    string
	Props TableCellProps
	Slots TableCellSlots
}

type TableCellProps struct {
	IsHeader bool
}

type TableCellSlots struct {
	Default []InlineComponent
}

// ---- columns ----

type ColumnList struct {
	blockNode
	ID    string
	Slots ColumnListSlots
}

type ColumnListSlots struct {
	Default []Component
}

type Column struct {
	blockNode
	ID    string
	Props ColumnProps
	Slots ColumnSlots
}

// ColumnProps.WidthRatio is the share of the row taken by the column; zero
// means evenly split. NaN and infinities are treated as zero and omitted on
// encode.
type ColumnProps struct {
	WidthRatio float64
}

type ColumnSlots struct {
	Default []Component
}

// Unsupported stands in for a block the producer could not represent.
type Unsupported struct {
	blockNode
	ID    string
	Props UnsupportedProps
}

type UnsupportedProps struct {
	Details string
}

func (Heading) Kind() Kind     { return KindHeading }
func (Paragraph) Kind() Kind   { return KindParagraph }
func (ListItem) Kind() Kind    { return KindListItem }
func (List) Kind() Kind        { return KindList }
func (BlockQuote) Kind() Kind  { return KindBlockQuote }
func (Callout) Kind() Kind     { return KindCallout }
func (Divider) Kind() Kind     { return KindDivider }
func (Toggle) Kind() Kind      { return KindToggle }
func (Bookmark) Kind() Kind    { return KindBookmark }
func (File) Kind() Kind        { return KindFile }
func (Image) Kind() Kind       { return KindImage }
func (CodeBlock) Kind() Kind   { return KindCodeBlock }
func (Katex) Kind() Kind       { return KindKatex }
func (Table) Kind() Kind       { return KindTable }
func (TableRow) Kind() Kind    { return KindTableRow }
func (TableCell) Kind() Kind   { return KindTableCell }
func (ColumnList) Kind() Kind  { return KindColumnList }
func (Column) Kind() Kind      { return KindColumn }
func (Unsupported) Kind() Kind { return KindUnsupported }

func (c Heading) NodeID() string     { return c.ID }
func (c Paragraph) NodeID() string   { return c.ID }
func (c ListItem) NodeID() string    { return c.ID }
func (c List) NodeID() string        { return c.ID }
func (c BlockQuote) NodeID() string  { return c.ID }
func (c Callout) NodeID() string     { return c.ID }
func (c Divider) NodeID() string     { return c.ID }
func (c Toggle) NodeID() string      { return c.ID }
func (c Bookmark) NodeID() string    { return c.ID }
func (c File) NodeID() string        { return c.ID }
func (c Image) NodeID() string       { return c.ID }
func (c CodeBlock) NodeID() string   { return c.ID }
func (c Katex) NodeID() string       { return c.ID }
func (c Table) NodeID() string       { return c.ID }
func (c TableRow) NodeID() string    { return c.ID }
func (c TableCell) NodeID() string   { return c.ID }
func (c ColumnList) NodeID() string  { return c.ID }
func (c Column) NodeID() string      { return c.ID }
func (c Unsupported) NodeID() string { return c.ID }
