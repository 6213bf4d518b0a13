package jarkup

import (
	"context"
	"errors"

	"github.com/reoring/jarkup/source/yamlsrc"
)

// UnmarshalYAML decodes a YAML document holding a single component. The
// YAML shape mirrors the JSON one.
func UnmarshalYAML(ctx context.Context, data []byte, opts ...DecodeOpt) (Component, error) {
	v, err := readYAML(data, pickOpt(opts))
	if err != nil {
		return nil, err
	}
	return Decode(ctx, v, opts...)
}

// UnmarshalYAMLDocument decodes a YAML sequence of root components.
func UnmarshalYAMLDocument(ctx context.Context, data []byte, opts ...DecodeOpt) (Document, error) {
	v, err := readYAML(data, pickOpt(opts))
	if err != nil {
		return nil, err
	}
	return DecodeDocument(ctx, v, opts...)
}

// MarshalYAML encodes a component as YAML.
func MarshalYAML(c Component) ([]byte, error) {
	return yamlsrc.Encode(Encode(c))
}

// MarshalYAMLDocument encodes a document as a YAML sequence.
func MarshalYAMLDocument(doc Document) ([]byte, error) {
	return yamlsrc.Encode(EncodeDocument(doc))
}

// yamlValuesPerNode bounds the generic values one component may take: the
// node object, its props and slots objects, their members and slot arrays.
const yamlValuesPerNode = 32

func readYAML(data []byte, opt DecodeOpt) (any, error) {
	if err := checkSize(int64(len(data)), opt); err != nil {
		return nil, err
	}
	var maxValues int64
	if opt.MaxNodes > 0 {
		maxValues = int64(opt.MaxNodes) * yamlValuesPerNode
	}
	v, err := yamlsrc.Decode(data, yamlsrc.Options{
		RejectDuplicates: opt.Strictness.OnDuplicateKey == Error,
		MaxDepth:         opt.tokenDepth(),
		MaxValues:        maxValues,
	})
	if err == nil {
		return v, nil
	}
	var dup *yamlsrc.DuplicateKeyError
	if errors.As(err, &dup) {
		return nil, issueError(dup.Path, CodeDuplicateKey, dup.Error(), map[string]any{"key": dup.Key}, err)
	}
	var deep *yamlsrc.DepthError
	if errors.As(err, &deep) {
		return nil, issueError(deep.Path, CodeTooDeep, deep.Error(), map[string]any{"max": deep.Max}, err)
	}
	var big *yamlsrc.SizeError
	if errors.As(err, &big) {
		return nil, issueError(big.Path, CodeTooBig, big.Error(), map[string]any{"max": big.Max}, err)
	}
	return nil, issueError("/", CodeParseError, err.Error(), nil, err)
}
