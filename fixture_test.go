package jarkup_test

import (
	"github.com/reoring/jarkup"
)

func text(s string) jarkup.Text {
	return jarkup.Text{Props: jarkup.TextProps{Text: s}}
}

func inlines(ss ...string) []jarkup.InlineComponent {
	out := make([]jarkup.InlineComponent, len(ss))
	for i, s := range ss {
		out[i] = text(s)
	}
	return out
}

// everyKind returns a document exercising every kind with non-default props.
func everyKind() jarkup.Document {
	return jarkup.Document{
		jarkup.Heading{
			ID:    "h",
			Props: jarkup.HeadingProps{Level: jarkup.H3},
			Slots: jarkup.HeadingSlots{Default: []jarkup.InlineComponent{
				jarkup.Text{Props: jarkup.TextProps{
					Text: "styled", Color: "red", BackgroundColor: "#eee", Bold: true, Italic: true,
					Underline: true, Strikethrough: true, Katex: true, Code: true, Ruby: "ru", Href: "https://example.com", Favicon: "f.ico",
				}},
				jarkup.Icon{Props: jarkup.IconProps{Src: "i.png", Alt: "icon"}},
			}},
		},
		jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: inlines("para")}},
		jarkup.List{
			Props: jarkup.ListProps{ListStyle: jarkup.ListOrdered},
			Slots: jarkup.ListSlots{Default: []jarkup.Component{
				jarkup.ListItem{Slots: jarkup.ListItemSlots{Default: inlines("one")}},
				jarkup.List{Slots: jarkup.ListSlots{Default: []jarkup.Component{
					jarkup.ListItem{Slots: jarkup.ListItemSlots{Default: inlines("nested")}},
				}}},
			}},
		},
		jarkup.BlockQuote{Props: jarkup.BlockQuoteProps{Cite: "someone"}, Slots: jarkup.BlockQuoteSlots{Default: []jarkup.Component{text("quoted")}}},
		jarkup.Callout{Props: jarkup.CalloutProps{Type: jarkup.CalloutWarning}, Slots: jarkup.CalloutSlots{Default: []jarkup.Component{
			jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: inlines("careful")}},
		}}},
		jarkup.Divider{ID: "d"},
		jarkup.Toggle{Slots: jarkup.ToggleSlots{
			Summary: inlines("more"),
			Default: []jarkup.Component{jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: inlines("hidden")}}},
		}},
		jarkup.Bookmark{Props: jarkup.BookmarkProps{URL: "https://example.com", Title: "t", Description: "d", Image: "i.png"}},
		jarkup.File{Props: jarkup.FileProps{Src: "a.pdf", Name: "A"}},
		jarkup.Image{Props: jarkup.ImageProps{Src: "b.png", Alt: "B"}},
		jarkup.CodeBlock{Props: jarkup.CodeBlockProps{Code: "fmt.Println()", Language: "go"}, Slots: jarkup.CodeBlockSlots{Default: inlines("caption")}},
		jarkup.Katex{Props: jarkup.KatexProps{Expression: "e^{i\\pi}"}},
		jarkup.Table{
			Props: jarkup.TableProps{HasColumnHeader: true, HasRowHeader: true, Caption: "cap"},
			Slots: jarkup.TableSlots{
				Header: []jarkup.Component{jarkup.TableRow{Slots: jarkup.TableRowSlots{Default: []jarkup.TableCell{
					{Props: jarkup.TableCellProps{IsHeader: true}, Slots: jarkup.TableCellSlots{Default: inlines("k")}},
				}}}},
				Body: []jarkup.Component{jarkup.TableRow{Slots: jarkup.TableRowSlots{Default: []jarkup.TableCell{
					{Slots: jarkup.TableCellSlots{Default: inlines("v")}},
				}}}},
			},
		},
		jarkup.ColumnList{Slots: jarkup.ColumnListSlots{Default: []jarkup.Component{
			jarkup.Column{Props: jarkup.ColumnProps{WidthRatio: 0.25}, Slots: jarkup.ColumnSlots{Default: []jarkup.Component{text("left")}}},
			jarkup.Column{Slots: jarkup.ColumnSlots{Default: []jarkup.Component{jarkup.Divider{}}}},
		}}},
		jarkup.Unsupported{Props: jarkup.UnsupportedProps{Details: "embed"}},
	}
}
