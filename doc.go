// Package jarkup implements the jarkup rich-block document model and its
// JSON encoding.
//
// A Document is an ordered list of Components. Each Component is one of a
// closed set of kinds: Text and Icon form the InlineComponent union, every
// other kind (Heading, Paragraph, List, Table, ...) the BlockComponent
// union. On the wire every node is an object
//
//	{"type": "<Kind>", "inline": <bool>, "id": "...", "props": {...}, "slots": {...}}
//
// where optional props equal to their default are omitted and required
// slots are always emitted.
//
// The package provides:
//
//   - Typed constructors-by-value for every kind (Heading{Props: ...}).
//   - Encode/Decode between trees and generic JSON values, plus Marshal and
//     Unmarshal helpers for bytes, a pluggable token Source and YAML.
//   - A stable error model via Issues (JSON Pointer, code, message).
//   - Decode budgets (nesting depth, node count, bytes) and duplicate key
//     detection for untrusted input.
//   - Tree walking and a JSON Schema export of the wire format.
//
// Typical usage:
//
//	doc, err := jarkup.UnmarshalDocument(ctx, data)
//	if iss, ok := jarkup.AsIssues(err); ok {
//	    for _, it := range iss {
//	        log.Printf("%s at %s", it.Code, it.Path)
//	    }
//	}
//	out, err := jarkup.MarshalDocument(doc)
//
// Trees are plain values and are never mutated by this package, so they may
// be shared between goroutines.
package jarkup
