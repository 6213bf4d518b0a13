package jarkup

import (
	js "github.com/reoring/jarkup/jsonschema"
)

// presence says whether a kind's props or slots object exists on the wire.
type presence int

const (
	// absent: never emitted; accepted on decode when missing, null or an object.
	absent presence = iota
	// optionalRecord: omitted when every member is at its default.
	optionalRecord
	// requiredRecord: always emitted, required on decode.
	requiredRecord
)

// none is the props or slots record of kinds that have no such members.
type none struct{}

var noneRecord = newRecord[none]()

// kindDef is the generic definition of one concrete kind: its props and
// slots schemas plus the functions that assemble and split a value.
type kindDef[C Component, P any, S any] struct {
	kind      Kind
	props     *record[P]
	propsMode presence
	slots     *record[S]
	slotsMode presence
	build     func(id string, p P, s S) C
	split     func(c C) (id string, p P, s S)
}

// kindSpec is the type-erased registry entry produced from a kindDef.
type kindSpec struct {
	kind     Kind
	inline   bool
	zero     func() Component
	decode   func(d *decoder, obj map[string]any, at *path) (Component, bool)
	encode   func(c Component) map[string]any
	children func(c Component) []Component
	schema   func() *js.Schema
}

// Top-level keys shared by every kind.
const (
	keyType   = "type"
	keyInline = "inline"
	keyID     = "id"
	keyProps  = "props"
	keySlots  = "slots"
)

var nodeKeys = map[string]struct{}{keyType: {}, keyInline: {}, keyID: {}, keyProps: {}, keySlots: {}}

func (def kindDef[C, P, S]) spec() *kindSpec {
	var zero C
	inline := zero.Inline()
	return &kindSpec{
		kind:   def.kind,
		inline: inline,
		zero:   func() Component { var c C; return c },
		decode: func(d *decoder, obj map[string]any, at *path) (Component, bool) {
			mark := d.mark()
			if lit, ok := obj[keyInline]; !ok {
				d.report(at.field(keyInline), CodeRequired, "missing 'inline'", nil)
			} else if b, isBool := lit.(bool); !isBool {
				d.typeMismatch(at.field(keyInline), "boolean", lit)
			} else if b != inline {
				d.report(at.field(keyInline), CodeInvalidType, literalHint(inline), map[string]any{"expected": inline, "got": b})
			}
			var id string
			if v, ok := obj[keyID]; ok && v != nil {
				id, _ = stringWire.decode(d, v, at.field(keyID))
			}
			p := decodeRecord(d, def.props, def.propsMode, obj, keyProps, at)
			s := decodeRecord(d, def.slots, def.slotsMode, obj, keySlots, at)
			d.unknownKeys(obj, nodeKeys, at)
			if !d.clean(mark) {
				return nil, false
			}
			return def.build(id, p, s), true
		},
		encode: func(c Component) map[string]any {
			id, p, s := def.split(c.(C))
			m := map[string]any{keyType: string(def.kind), keyInline: inline}
			if id != "" {
				m[keyID] = id
			}
			encodeRecord(m, def.props, def.propsMode, &p, keyProps)
			encodeRecord(m, def.slots, def.slotsMode, &s, keySlots)
			return m
		},
		children: func(c Component) []Component {
			_, _, s := def.split(c.(C))
			return childrenOf(def.slots, &s)
		},
		schema: func() *js.Schema {
			out := js.Object(map[string]*js.Schema{
				keyType:   {Const: string(def.kind)},
				keyInline: {Const: inline},
				keyID:     {Type: "string"},
			}, keyType, keyInline)
			out.Title = string(def.kind)
			out.AdditionalProperties = false
			addRecordSchema(out, def.props, def.propsMode, keyProps)
			addRecordSchema(out, def.slots, def.slotsMode, keySlots)
			return out
		},
	}
}

func literalHint(inline bool) string {
	if inline {
		return "expected inline=true"
	}
	return "expected inline=false"
}

func decodeRecord[R any](d *decoder, rec *record[R], mode presence, obj map[string]any, key string, at *path) R {
	var zero R
	if d.halted() {
		return zero
	}
	kat := at.field(key)
	v, ok := obj[key]
	if !ok || v == nil {
		if mode == requiredRecord {
			if ok {
				d.typeMismatch(kat, "object", v)
			} else {
				d.report(kat, CodeRequired, "missing '"+key+"'", nil)
			}
		}
		return zero
	}
	m, ok := d.object(v, kat)
	if !ok {
		return zero
	}
	return rec.decode(d, m, kat)
}

func encodeRecord[R any](dst map[string]any, rec *record[R], mode presence, r *R, key string) {
	switch mode {
	case absent:
		return
	case optionalRecord:
		if m := rec.encode(r); len(m) > 0 {
			dst[key] = m
		}
	default:
		dst[key] = rec.encode(r)
	}
}

func addRecordSchema[R any](out *js.Schema, rec *record[R], mode presence, key string) {
	switch mode {
	case absent, optionalRecord:
		out.Properties[key] = js.Nullable(rec.schema())
	default:
		out.Properties[key] = rec.schema()
		out.Required = append(out.Required, key)
	}
}

// ---- child wires ----

// componentWire decodes a slot element through the untagged Component union.
var componentWire = wire[Component]{
	decode: func(d *decoder, v any, at *path) (Component, bool) { return d.component(v, at) },
	encode: func(c Component) any { return Encode(c) },
	schema: func() *js.Schema { return js.RefTo("Component") },
}

// inlineWire decodes a slot element through the InlineComponent tagged union.
var inlineWire = wire[InlineComponent]{
	decode: func(d *decoder, v any, at *path) (InlineComponent, bool) { return d.inline(v, at) },
	encode: func(c InlineComponent) any { return Encode(c) },
	schema: func() *js.Schema { return js.RefTo("InlineComponent") },
}

// exactWire decodes a slot element that must be one specific kind. The
// `type` tag may be omitted since the slot already fixes the kind.
func exactWire[C Component](k Kind) wire[C] {
	return wire[C]{
		decode: func(d *decoder, v any, at *path) (C, bool) {
			var zero C
			c, ok := d.exact(v, k, at)
			if !ok {
				return zero, false
			}
			return c.(C), true
		},
		encode: func(c C) any { return Encode(c) },
		schema: func() *js.Schema { return js.RefTo(string(k)) },
	}
}

// childrenOf lists the Component children of a slots record in slot order.
func childrenOf[R any](rec *record[R], r *R) []Component {
	var out []Component
	for _, f := range rec.fields {
		if f.children != nil {
			out = append(out, f.children(r)...)
		}
	}
	return out
}
