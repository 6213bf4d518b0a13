package jarkup

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"
)

// Marshal encodes a component as compact JSON. Object keys are sorted.
func Marshal(c Component) ([]byte, error) {
	return json.Marshal(Encode(c))
}

// MarshalIndent is like Marshal but applies indentation.
func MarshalIndent(c Component, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(Encode(c), prefix, indent)
}

// MarshalDocument encodes a document as a compact JSON array.
func MarshalDocument(doc Document) ([]byte, error) {
	return json.Marshal(EncodeDocument(doc))
}

// MarshalDocumentIndent is like MarshalDocument but applies indentation.
func MarshalDocumentIndent(doc Document, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(EncodeDocument(doc), prefix, indent)
}

// MarshalJSON implements json.Marshaler. A nil document encodes as [].
func (doc Document) MarshalJSON() ([]byte, error) {
	return MarshalDocument(doc)
}

// UnmarshalJSON implements json.Unmarshaler with the default DecodeOpt.
func (doc *Document) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*doc = nil
		return nil
	}
	out, err := UnmarshalDocument(context.Background(), data)
	if err != nil {
		return err
	}
	*doc = out
	return nil
}
