package jarkup

// Encode converts a component into its generic JSON value: a map with the
// `type` tag, the `inline` literal and the non-default props and slots.
// Encoding never fails; a nil component encodes as nil.
func Encode(c Component) map[string]any {
	if c == nil {
		return nil
	}
	s, ok := registry.byKind[c.Kind()]
	if !ok {
		return nil
	}
	return s.encode(c)
}

// EncodeDocument converts a document into a JSON array value.
func EncodeDocument(doc Document) []any {
	out := make([]any, len(doc))
	for i, c := range doc {
		out[i] = Encode(c)
	}
	return out
}
