package jarkup

import "strings"

// unionArm is one branch of the untagged Component union: a structural
// predicate and the decoder it commits to.
type unionArm struct {
	name   string
	match  func(obj map[string]any) bool
	decode func(d *decoder, v any, at *path) (Component, bool)
}

// componentArms lists the Component arms in priority order. The predicates
// must never both hold for one value; componentArms is checked pairwise over
// every registered kind in the tests.
func componentArms() [2]unionArm {
	return [2]unionArm{
		{
			name:  "InlineComponent",
			match: func(obj map[string]any) bool { return tagIn(obj, true) },
			decode: func(d *decoder, v any, at *path) (Component, bool) {
				c, ok := d.inline(v, at)
				return c, ok
			},
		},
		{
			name:  "BlockComponent",
			match: func(obj map[string]any) bool { return tagIn(obj, false) },
			decode: func(d *decoder, v any, at *path) (Component, bool) {
				c, ok := d.block(v, at)
				return c, ok
			},
		},
	}
}

// tagIn reports whether obj carries a `type` tag registered in the inline or
// block union.
func tagIn(obj map[string]any, inline bool) bool {
	tag, ok := obj[keyType].(string)
	if !ok {
		return false
	}
	s, ok := registry.byKind[Kind(tag)]
	return ok && s.inline == inline
}

// component decodes the untagged outer union. The first arm whose predicate
// holds commits; errors inside it propagate unchanged.
func (d *decoder) component(v any, at *path) (Component, bool) {
	if obj, ok := v.(map[string]any); ok {
		for _, arm := range componentArms() {
			if arm.match(obj) {
				return arm.decode(d, v, at)
			}
		}
	}
	d.report(at, CodeNoMatch, noMatchHint(v), map[string]any{"variants": []string{"InlineComponent", "BlockComponent"}})
	return nil, false
}

func noMatchHint(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return "expected object, got " + jsonTypeName(v)
	}
	switch tag := obj[keyType].(type) {
	case nil:
		return "missing 'type'"
	case string:
		return "unknown type '" + tag + "'"
	default:
		return "'type' must be a string"
	}
}

func (d *decoder) inline(v any, at *path) (InlineComponent, bool) {
	c, ok := d.tagged(v, at, true)
	if !ok {
		return nil, false
	}
	return c.(InlineComponent), true
}

func (d *decoder) block(v any, at *path) (BlockComponent, bool) {
	c, ok := d.tagged(v, at, false)
	if !ok {
		return nil, false
	}
	return c.(BlockComponent), true
}

// tagged decodes one of the inner unions, dispatching on the `type` tag.
func (d *decoder) tagged(v any, at *path, inline bool) (Component, bool) {
	obj, ok := d.object(v, at)
	if !ok {
		return nil, false
	}
	raw, present := obj[keyType]
	if !present || raw == nil {
		d.report(at.field(keyType), CodeRequired, "missing discriminator 'type'", nil)
		return nil, false
	}
	tag, ok := raw.(string)
	if !ok {
		d.typeMismatch(at.field(keyType), "string", raw)
		return nil, false
	}
	s, ok := registry.byKind[Kind(tag)]
	if !ok || s.inline != inline {
		d.report(at.field(keyType), CodeUnknownTag, "unknown variant '"+tag+"', expected one of "+strings.Join(kindNames(inline), ", "), map[string]any{"tag": tag})
		return nil, false
	}
	return d.kind(s, obj, at)
}

// exact decodes a value that must be of kind k. A missing tag is accepted.
func (d *decoder) exact(v any, k Kind, at *path) (Component, bool) {
	obj, ok := d.object(v, at)
	if !ok {
		return nil, false
	}
	if raw, present := obj[keyType]; present && raw != nil {
		tag, ok := raw.(string)
		if !ok {
			d.typeMismatch(at.field(keyType), "string", raw)
			return nil, false
		}
		if Kind(tag) != k {
			d.report(at.field(keyType), CodeUnknownTag, "expected '"+string(k)+"', got '"+tag+"'", map[string]any{"tag": tag, "expected": string(k)})
			return nil, false
		}
	}
	return d.kind(registry.byKind[k], obj, at)
}

func (d *decoder) kind(s *kindSpec, obj map[string]any, at *path) (Component, bool) {
	if !d.enter(at) {
		return nil, false
	}
	defer d.leave()
	return s.decode(d, obj, at)
}

func kindNames(inline bool) []string {
	var out []string
	for _, k := range kindsWhere(inline) {
		out = append(out, string(k))
	}
	return out
}
