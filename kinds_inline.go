package jarkup

// Text is a run of text with optional styling. Its inline flag is always
// true and it carries no slots.
type Text struct {
	inlineNode
	ID    string
	Props TextProps
}

// TextProps holds the attributes of a Text run. Text is required; every
// other field is optional and omitted on the wire when empty or false.
type TextProps struct {
	Text            string
	Color           string
	BackgroundColor string
	Bold            bool
	Italic          bool
	Underline       bool
	Strikethrough   bool
	Katex           bool
	Code            bool
	Ruby            string
	Href            string
	Favicon         string
}

// Icon is a small inline image.
type Icon struct {
	inlineNode
	ID    string
	Props IconProps
}

type IconProps struct {
	Src string
	Alt string
}

func (Text) Kind() Kind { return KindText }
func (Icon) Kind() Kind { return KindIcon }

func (c Text) NodeID() string { return c.ID }
func (c Icon) NodeID() string { return c.ID }

var textDef = kindDef[Text, TextProps, none]{
	kind: KindText,
	props: newRecord(
		required("text", func(p *TextProps) *string { return &p.Text }, stringWire),
		optional("color", func(p *TextProps) *string { return &p.Color }, stringWire),
		optional("backgroundColor", func(p *TextProps) *string { return &p.BackgroundColor }, stringWire),
		optional("bold", func(p *TextProps) *bool { return &p.Bold }, boolWire),
		optional("italic", func(p *TextProps) *bool { return &p.Italic }, boolWire),
		optional("underline", func(p *TextProps) *bool { return &p.Underline }, boolWire),
		optional("strikethrough", func(p *TextProps) *bool { return &p.Strikethrough }, boolWire),
		optional("katex", func(p *TextProps) *bool { return &p.Katex }, boolWire),
		optional("code", func(p *TextProps) *bool { return &p.Code }, boolWire),
		optional("ruby", func(p *TextProps) *string { return &p.Ruby }, stringWire),
		optional("href", func(p *TextProps) *string { return &p.Href }, stringWire),
		optional("favicon", func(p *TextProps) *string { return &p.Favicon }, stringWire),
	),
	propsMode: requiredRecord,
	slots:     noneRecord,
	build:     func(id string, p TextProps, _ none) Text { return Text{ID: id, Props: p} },
	split:     func(c Text) (string, TextProps, none) { return c.ID, c.Props, none{} },
}

var iconDef = kindDef[Icon, IconProps, none]{
	kind: KindIcon,
	props: newRecord(
		required("src", func(p *IconProps) *string { return &p.Src }, stringWire),
		optional("alt", func(p *IconProps) *string { return &p.Alt }, stringWire),
	),
	propsMode: requiredRecord,
	slots:     noneRecord,
	build:     func(id string, p IconProps, _ none) Icon { return Icon{ID: id, Props: p} },
	split:     func(c Icon) (string, IconProps, none) { return c.ID, c.Props, none{} },
}
