package jarkup

// registry is filled by init: kind definitions reach the registry through
// their child wires, so it cannot be a plain initialized variable.
var registry kindRegistry

type kindRegistry struct {
	order  []*kindSpec
	byKind map[Kind]*kindSpec
}

func init() {
	registry = newKindRegistry(
		textDef.spec(),
		iconDef.spec(),
		headingDef.spec(),
		paragraphDef.spec(),
		listItemDef.spec(),
		listDef.spec(),
		blockQuoteDef.spec(),
		calloutDef.spec(),
		dividerDef.spec(),
		toggleDef.spec(),
		bookmarkDef.spec(),
		fileDef.spec(),
		imageDef.spec(),
		codeBlockDef.spec(),
		katexDef.spec(),
		tableDef.spec(),
		tableRowDef.spec(),
		tableCellDef.spec(),
		columnListDef.spec(),
		columnDef.spec(),
		unsupportedDef.spec(),
	)
}

func newKindRegistry(specs ...*kindSpec) kindRegistry {
	r := kindRegistry{byKind: make(map[Kind]*kindSpec, len(specs))}
	for _, s := range specs {
		if _, dup := r.byKind[s.kind]; dup {
			panic("jarkup: kind registered twice: " + string(s.kind))
		}
		r.order = append(r.order, s)
		r.byKind[s.kind] = s
	}
	return r
}

var headingDef = kindDef[Heading, HeadingProps, HeadingSlots]{
	kind: KindHeading,
	props: newRecord(
		required("level", func(p *HeadingProps) *HeadingLevel { return &p.Level }, headingLevelWire),
	),
	propsMode: requiredRecord,
	slots: newRecord(
		slot("default", true, func(s *HeadingSlots) *[]InlineComponent { return &s.Default }, inlineWire),
	),
	slotsMode: requiredRecord,
	build: func(id string, p HeadingProps, s HeadingSlots) Heading {
		return Heading{ID: id, Props: p, Slots: s}
	},
	split: func(c Heading) (string, HeadingProps, HeadingSlots) { return c.ID, c.Props, c.Slots },
}

var paragraphDef = kindDef[Paragraph, none, ParagraphSlots]{
	kind:  KindParagraph,
	props: noneRecord,
	slots: newRecord(
		slot("default", true, func(s *ParagraphSlots) *[]InlineComponent { return &s.Default }, inlineWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, _ none, s ParagraphSlots) Paragraph { return Paragraph{ID: id, Slots: s} },
	split:     func(c Paragraph) (string, none, ParagraphSlots) { return c.ID, none{}, c.Slots },
}

var listItemDef = kindDef[ListItem, none, ListItemSlots]{
	kind:  KindListItem,
	props: noneRecord,
	slots: newRecord(
		slot("default", true, func(s *ListItemSlots) *[]InlineComponent { return &s.Default }, inlineWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, _ none, s ListItemSlots) ListItem { return ListItem{ID: id, Slots: s} },
	split:     func(c ListItem) (string, none, ListItemSlots) { return c.ID, none{}, c.Slots },
}

var listDef = kindDef[List, ListProps, ListSlots]{
	kind: KindList,
	props: newRecord(
		optional("listStyle", func(p *ListProps) *ListStyle { return &p.ListStyle }, listStyleWire),
	),
	propsMode: optionalRecord,
	slots: newRecord(
		slot("default", true, func(s *ListSlots) *[]Component { return &s.Default }, componentWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, p ListProps, s ListSlots) List { return List{ID: id, Props: p, Slots: s} },
	split:     func(c List) (string, ListProps, ListSlots) { return c.ID, c.Props, c.Slots },
}

var blockQuoteDef = kindDef[BlockQuote, BlockQuoteProps, BlockQuoteSlots]{
	kind: KindBlockQuote,
	props: newRecord(
		optional("cite", func(p *BlockQuoteProps) *string { return &p.Cite }, stringWire),
	),
	propsMode: optionalRecord,
	slots: newRecord(
		slot("default", true, func(s *BlockQuoteSlots) *[]Component { return &s.Default }, componentWire),
	),
	slotsMode: requiredRecord,
	build: func(id string, p BlockQuoteProps, s BlockQuoteSlots) BlockQuote {
		return BlockQuote{ID: id, Props: p, Slots: s}
	},
	split: func(c BlockQuote) (string, BlockQuoteProps, BlockQuoteSlots) { return c.ID, c.Props, c.Slots },
}

var calloutDef = kindDef[Callout, CalloutProps, CalloutSlots]{
	kind: KindCallout,
	props: newRecord(
		optional("type", func(p *CalloutProps) *CalloutType { return &p.Type }, calloutTypeWire),
	),
	propsMode: optionalRecord,
	slots: newRecord(
		slot("default", true, func(s *CalloutSlots) *[]Component { return &s.Default }, componentWire),
	),
	slotsMode: requiredRecord,
	build: func(id string, p CalloutProps, s CalloutSlots) Callout {
		return Callout{ID: id, Props: p, Slots: s}
	},
	split: func(c Callout) (string, CalloutProps, CalloutSlots) { return c.ID, c.Props, c.Slots },
}

var dividerDef = kindDef[Divider, none, none]{
	kind:  KindDivider,
	props: noneRecord,
	slots: noneRecord,
	build: func(id string, _ none, _ none) Divider { return Divider{ID: id} },
	split: func(c Divider) (string, none, none) { return c.ID, none{}, none{} },
}

var toggleDef = kindDef[Toggle, none, ToggleSlots]{
	kind:  KindToggle,
	props: noneRecord,
	slots: newRecord(
		slot("default", true, func(s *ToggleSlots) *[]Component { return &s.Default }, componentWire),
		slot("summary", true, func(s *ToggleSlots) *[]InlineComponent { return &s.Summary }, inlineWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, _ none, s ToggleSlots) Toggle { return Toggle{ID: id, Slots: s} },
	split:     func(c Toggle) (string, none, ToggleSlots) { return c.ID, none{}, c.Slots },
}

var bookmarkDef = kindDef[Bookmark, BookmarkProps, none]{
	kind: KindBookmark,
	props: newRecord(
		required("url", func(p *BookmarkProps) *string { return &p.URL }, stringWire),
		optional("title", func(p *BookmarkProps) *string { return &p.Title }, stringWire),
		optional("description", func(p *BookmarkProps) *string { return &p.Description }, stringWire),
		optional("image", func(p *BookmarkProps) *string { return &p.Image }, stringWire),
	),
	propsMode: requiredRecord,
	slots:     noneRecord,
	build:     func(id string, p BookmarkProps, _ none) Bookmark { return Bookmark{ID: id, Props: p} },
	split:     func(c Bookmark) (string, BookmarkProps, none) { return c.ID, c.Props, none{} },
}

var fileDef = kindDef[File, FileProps, none]{
	kind: KindFile,
	props: newRecord(
		required("src", func(p *FileProps) *string { return &p.Src }, stringWire),
		optional("name", func(p *FileProps) *string { return &p.Name }, stringWire),
	),
	propsMode: requiredRecord,
	slots:     noneRecord,
	build:     func(id string, p FileProps, _ none) File { return File{ID: id, Props: p} },
	split:     func(c File) (string, FileProps, none) { return c.ID, c.Props, none{} },
}

var imageDef = kindDef[Image, ImageProps, none]{
	kind: KindImage,
	props: newRecord(
		required("src", func(p *ImageProps) *string { return &p.Src }, stringWire),
		optional("alt", func(p *ImageProps) *string { return &p.Alt }, stringWire),
	),
	propsMode: requiredRecord,
	slots:     noneRecord,
	build:     func(id string, p ImageProps, _ none) Image { return Image{ID: id, Props: p} },
	split:     func(c Image) (string, ImageProps, none) { return c.ID, c.Props, none{} },
}

var codeBlockDef = kindDef[CodeBlock, CodeBlockProps, CodeBlockSlots]{
	kind: KindCodeBlock,
	props: newRecord(
		required("code", func(p *CodeBlockProps) *string { return &p.Code }, stringWire),
		required("language", func(p *CodeBlockProps) *string { return &p.Language }, stringWire),
	),
	propsMode: requiredRecord,
	slots: newRecord(
		slot("default", true, func(s *CodeBlockSlots) *[]InlineComponent { return &s.Default }, inlineWire),
	),
	slotsMode: requiredRecord,
	build: func(id string, p CodeBlockProps, s CodeBlockSlots) CodeBlock {
		return CodeBlock{ID: id, Props: p, Slots: s}
	},
	split: func(c CodeBlock) (string, CodeBlockProps, CodeBlockSlots) { return c.ID, c.Props, c.Slots },
}

var katexDef = kindDef[Katex, KatexProps, none]{
	kind: KindKatex,
	props: newRecord(
		required("expression", func(p *KatexProps) *string { return &p.Expression }, stringWire),
	),
	propsMode: requiredRecord,
	slots:     noneRecord,
	build:     func(id string, p KatexProps, _ none) Katex { return Katex{ID: id, Props: p} },
	split:     func(c Katex) (string, KatexProps, none) { return c.ID, c.Props, none{} },
}

var tableDef = kindDef[Table, TableProps, TableSlots]{
	kind: KindTable,
	props: newRecord(
		optional("hasColumnHeader", func(p *TableProps) *bool { return &p.HasColumnHeader }, boolWire),
		optional("hasRowHeader", func(p *TableProps) *bool { return &p.HasRowHeader }, boolWire),
		optional("caption", func(p *TableProps) *string { return &p.Caption }, stringWire),
	),
	propsMode: optionalRecord,
	slots: newRecord(
		slot("header", false, func(s *TableSlots) *[]Component { return &s.Header }, componentWire),
		slot("body", true, func(s *TableSlots) *[]Component { return &s.Body }, componentWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, p TableProps, s TableSlots) Table { return Table{ID: id, Props: p, Slots: s} },
	split:     func(c Table) (string, TableProps, TableSlots) { return c.ID, c.Props, c.Slots },
}

var tableRowDef = kindDef[TableRow, none, TableRowSlots]{
	kind:  KindTableRow,
	props: noneRecord,
	slots: newRecord(
		slot("default", true, func(s *TableRowSlots) *[]TableCell { return &s.Default }, exactWire[TableCell](KindTableCell)),
	),
	slotsMode: requiredRecord,
	build:     func(id string, _ none, s TableRowSlots) TableRow { return TableRow{ID: id, Slots: s} },
	split:     func(c TableRow) (string, none, TableRowSlots) { return c.ID, none{}, c.Slots },
}

var tableCellDef = kindDef[TableCell, TableCellProps, TableCellSlots]{
	kind: KindTableCell,
	props: newRecord(
		optional("isHeader", func(p *TableCellProps) *bool { return &p.IsHeader }, boolWire),
	),
	propsMode: optionalRecord,
	slots: newRecord(
		slot("default", true, func(s *TableCellSlots) *[]InlineComponent { return &s.Default }, inlineWire),
	),
	slotsMode: requiredRecord,
	build: func(id string, p TableCellProps, s TableCellSlots) TableCell {
		return TableCell{ID: id, Props: p, Slots: s}
	},
	split: func(c TableCell) (string, TableCellProps, TableCellSlots) { return c.ID, c.Props, c.Slots },
}

var columnListDef = kindDef[ColumnList, none, ColumnListSlots]{
	kind:  KindColumnList,
	props: noneRecord,
	slots: newRecord(
		slot("default", true, func(s *ColumnListSlots) *[]Component { return &s.Default }, componentWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, _ none, s ColumnListSlots) ColumnList { return ColumnList{ID: id, Slots: s} },
	split:     func(c ColumnList) (string, none, ColumnListSlots) { return c.ID, none{}, c.Slots },
}

var columnDef = kindDef[Column, ColumnProps, ColumnSlots]{
	kind: KindColumn,
	props: newRecord(
		optional("widthRatio", func(p *ColumnProps) *float64 { return &p.WidthRatio }, numberWire),
	),
	propsMode: optionalRecord,
	slots: newRecord(
		slot("default", true, func(s *ColumnSlots) *[]Component { return &s.Default }, componentWire),
	),
	slotsMode: requiredRecord,
	build:     func(id string, p ColumnProps, s ColumnSlots) Column { return Column{ID: id, Props: p, Slots: s} },
	split:     func(c Column) (string, ColumnProps, ColumnSlots) { return c.ID, c.Props, c.Slots },
}

var unsupportedDef = kindDef[Unsupported, UnsupportedProps, none]{
	kind: KindUnsupported,
	props: newRecord(
		optional("details", func(p *UnsupportedProps) *string { return &p.Details }, stringWire),
	),
	propsMode: optionalRecord,
	slots:     noneRecord,
	build:     func(id string, p UnsupportedProps, _ none) Unsupported { return Unsupported{ID: id, Props: p} },
	split:     func(c Unsupported) (string, UnsupportedProps, none) { return c.ID, c.Props, none{} },
}
