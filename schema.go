package jarkup

import (
	js "github.com/reoring/jarkup/jsonschema"
)

// SchemaID is the $id of the exported document schema.
const SchemaID = "https://jarkup.dev/schema/document.json"

// JSONSchema exports the wire format as a JSON Schema (2020-12). The root
// describes a Document; every kind is a definition under $defs, alongside
// the Component, InlineComponent and BlockComponent unions.
func JSONSchema() *js.Schema {
	defs := make(map[string]*js.Schema, len(registry.order)+3)
	var inline, block []*js.Schema
	for _, s := range registry.order {
		defs[string(s.kind)] = s.schema()
		if s.inline {
			inline = append(inline, js.RefTo(string(s.kind)))
		} else {
			block = append(block, js.RefTo(string(s.kind)))
		}
	}
	defs["InlineComponent"] = &js.Schema{Title: "InlineComponent", OneOf: inline}
	defs["BlockComponent"] = &js.Schema{Title: "BlockComponent", OneOf: block}
	defs["Component"] = &js.Schema{Title: "Component", OneOf: []*js.Schema{js.RefTo("InlineComponent"), js.RefTo("BlockComponent")}}

	root := js.ArrayOf(js.RefTo("Component"))
	root.SchemaURI = js.Draft
	root.ID = SchemaID
	root.Title = "Document"
	root.Defs = defs
	return root
}
