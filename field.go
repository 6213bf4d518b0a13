package jarkup

import (
	"math"

	js "github.com/reoring/jarkup/jsonschema"
)

// wire describes how one value type V maps to and from its JSON form.
type wire[V any] struct {
	decode func(d *decoder, v any, at *path) (V, bool)
	encode func(V) any
	schema func() *js.Schema
	// defaulted, when set, reports values that encode as the default.
	defaulted func(V) bool
}

// field describes one named member of a props or slots record R.
type field[R any] struct {
	name     string
	required bool
	// decode is only called for present, non-null values.
	decode func(d *decoder, r *R, v any, at *path)
	// encode returns false when the member must be omitted.
	encode func(r *R) (any, bool)
	schema func() *js.Schema
	// children is set for slot members only.
	children func(r *R) []Component
}

// required declares a member that is always emitted and must be present on
// decode.
func required[R any, V any](name string, get func(*R) *V, w wire[V]) field[R] {
	return field[R]{
		name:     name,
		required: true,
		decode: func(d *decoder, r *R, v any, at *path) {
			if x, ok := w.decode(d, v, at); ok {
				*get(r) = x
			}
		},
		encode: func(r *R) (any, bool) { return w.encode(*get(r)), true },
		schema: w.schema,
	}
}

// optional declares a member whose default is the zero value of V. It is
// omitted on encode iff it equals the default; absence or null decodes to
// the default.
func optional[R any, V comparable](name string, get func(*R) *V, w wire[V]) field[R] {
	return field[R]{
		name: name,
		decode: func(d *decoder, r *R, v any, at *path) {
			if x, ok := w.decode(d, v, at); ok {
				*get(r) = x
			}
		},
		encode: func(r *R) (any, bool) {
			var def V
			x := *get(r)
			if x == def || (w.defaulted != nil && w.defaulted(x)) {
				return nil, false
			}
			return w.encode(x), true
		},
		schema: w.schema,
	}
}

// slot declares a child container. Required slots are always emitted (as []
// when empty); optional slots are omitted when empty.
func slot[R any, C Component](name string, req bool, get func(*R) *[]C, w wire[C]) field[R] {
	return field[R]{
		name:     name,
		required: req,
		decode: func(d *decoder, r *R, v any, at *path) {
			arr, ok := v.([]any)
			if !ok {
				d.typeMismatch(at, "array", v)
				return
			}
			var out []C
			for i, e := range arr {
				if d.halted() {
					return
				}
				if c, ok := w.decode(d, e, at.at(i)); ok {
					out = append(out, c)
				}
			}
			*get(r) = out
		},
		encode: func(r *R) (any, bool) {
			cs := *get(r)
			if !req && len(cs) == 0 {
				return nil, false
			}
			arr := make([]any, len(cs))
			for i, c := range cs {
				arr[i] = w.encode(c)
			}
			return arr, true
		},
		schema: func() *js.Schema { return js.ArrayOf(w.schema()) },
		children: func(r *R) []Component {
			cs := *get(r)
			out := make([]Component, len(cs))
			for i, c := range cs {
				out[i] = c
			}
			return out
		},
	}
}

// record is the schema of a props or slots object.
type record[R any] struct {
	fields []field[R]
	names  map[string]struct{}
}

func newRecord[R any](fields ...field[R]) *record[R] {
	rec := &record[R]{fields: fields, names: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		rec.names[f.name] = struct{}{}
	}
	return rec
}

func (rec *record[R]) decode(d *decoder, obj map[string]any, at *path) R {
	var r R
	for _, f := range rec.fields {
		if d.halted() {
			return r
		}
		fat := at.field(f.name)
		v, present := obj[f.name]
		switch {
		case !present:
			if f.required {
				d.report(fat, CodeRequired, "missing '"+f.name+"'", nil)
			}
		case v == nil:
			if f.required {
				d.typeMismatch(fat, "non-null value", v)
			}
		default:
			f.decode(d, &r, v, fat)
		}
	}
	d.unknownKeys(obj, rec.names, at)
	return r
}

// encode renders the non-omitted members in declaration order.
func (rec *record[R]) encode(r *R) map[string]any {
	m := make(map[string]any, len(rec.fields))
	for _, f := range rec.fields {
		if v, ok := f.encode(r); ok {
			m[f.name] = v
		}
	}
	return m
}

func (rec *record[R]) schema() *js.Schema {
	s := js.Object(make(map[string]*js.Schema, len(rec.fields)))
	s.AdditionalProperties = false
	for _, f := range rec.fields {
		s.Properties[f.name] = f.schema()
		if f.required {
			s.Required = append(s.Required, f.name)
		}
	}
	return s
}

// ---- scalar wires ----

var stringWire = wire[string]{
	decode: func(d *decoder, v any, at *path) (string, bool) {
		s, ok := v.(string)
		if !ok {
			d.typeMismatch(at, "string", v)
		}
		return s, ok
	},
	encode: func(s string) any { return s },
	schema: func() *js.Schema { return &js.Schema{Type: "string"} },
}

var boolWire = wire[bool]{
	decode: func(d *decoder, v any, at *path) (bool, bool) {
		b, ok := v.(bool)
		if !ok {
			d.typeMismatch(at, "boolean", v)
		}
		return b, ok
	},
	encode: func(b bool) any { return b },
	schema: func() *js.Schema { return &js.Schema{Type: "boolean"} },
}

var numberWire = wire[float64]{
	decode: func(d *decoder, v any, at *path) (float64, bool) {
		f, ok := numberOf(v)
		if !ok {
			d.typeMismatch(at, "number", v)
		}
		return f, ok
	},
	encode: func(f float64) any {
		if nonFinite(f) {
			return float64(0)
		}
		return f
	},
	schema:    func() *js.Schema { return &js.Schema{Type: "number"} },
	defaulted: nonFinite,
}

// nonFinite values have no JSON form and encode as zero.
func nonFinite(f float64) bool { return math.IsNaN(f) || math.IsInf(f, 0) }

var headingLevelWire = wire[HeadingLevel]{
	decode: func(d *decoder, v any, at *path) (HeadingLevel, bool) {
		n, isInt, isNum := integerOf(v)
		if !isInt {
			if isNum {
				d.report(at, CodeInvalidType, "expected integer", map[string]any{"expected": "integer", "got": "number"})
			} else {
				d.typeMismatch(at, "integer", v)
			}
			return H1, false
		}
		if n < 1 || n > 6 {
			d.report(at, CodeOutOfRange, "heading level must be 1..6, got "+numberText(v, n), map[string]any{"min": 1, "max": 6, "got": n})
			return H1, false
		}
		l, _ := HeadingLevelFromInt(int(n))
		return l, true
	},
	encode: func(l HeadingLevel) any { return l.Int() },
	schema: func() *js.Schema {
		return &js.Schema{Type: "integer", Minimum: js.Float(1), Maximum: js.Float(6)}
	},
}

// enumWire maps a closed string enumeration whose variants are the indexes
// of names.
func enumWire[E ~uint8](names []string, parse func(string) (E, bool)) wire[E] {
	return wire[E]{
		decode: func(d *decoder, v any, at *path) (E, bool) {
			s, ok := v.(string)
			if !ok {
				d.typeMismatch(at, "string", v)
				var zero E
				return zero, false
			}
			e, ok := parse(s)
			if !ok {
				d.report(at, CodeInvalidEnum, "unknown value '"+s+"'", map[string]any{"allowed": names, "got": s})
			}
			return e, ok
		},
		encode: func(e E) any {
			if int(e) >= len(names) {
				return names[0]
			}
			return names[e]
		},
		schema: func() *js.Schema {
			s := &js.Schema{Type: "string"}
			for _, n := range names {
				s.Enum = append(s.Enum, n)
			}
			return s
		},
	}
}

var (
	listStyleWire   = enumWire(listStyleValues(), ParseListStyle)
	calloutTypeWire = enumWire(calloutTypeValues(), ParseCalloutType)
)
