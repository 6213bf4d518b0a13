package jarkup

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/jarkup/internal/engine"
)

// DecodeFrom consumes one JSON value from src and decodes it as a Component.
func DecodeFrom(ctx context.Context, src Source, opts ...DecodeOpt) (Component, error) {
	v, err := readValue(src, pickOpt(opts))
	if err != nil {
		return nil, err
	}
	return Decode(ctx, v, opts...)
}

// DecodeDocumentFrom consumes one JSON array from src and decodes it as a
// Document.
func DecodeDocumentFrom(ctx context.Context, src Source, opts ...DecodeOpt) (Document, error) {
	v, err := readValue(src, pickOpt(opts))
	if err != nil {
		return nil, err
	}
	return DecodeDocument(ctx, v, opts...)
}

// Unmarshal decodes JSON bytes holding a single component.
func Unmarshal(ctx context.Context, data []byte, opts ...DecodeOpt) (Component, error) {
	if err := checkSize(int64(len(data)), pickOpt(opts)); err != nil {
		return nil, err
	}
	return DecodeFrom(ctx, JSONBytes(data), opts...)
}

// UnmarshalDocument decodes JSON bytes holding a document array.
func UnmarshalDocument(ctx context.Context, data []byte, opts ...DecodeOpt) (Document, error) {
	if err := checkSize(int64(len(data)), pickOpt(opts)); err != nil {
		return nil, err
	}
	return DecodeDocumentFrom(ctx, JSONBytes(data), opts...)
}

// ReadDocument decodes a document from r. When MaxBytes is set the size cap
// is enforced up front, otherwise r is streamed into the tokenizer.
func ReadDocument(ctx context.Context, r io.Reader, opts ...DecodeOpt) (Document, error) {
	opt := pickOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, issueError("/", CodeParseError, err.Error(), nil, err)
		}
		return UnmarshalDocument(ctx, data, opts...)
	}
	return DecodeDocumentFrom(ctx, JSONReader(r), opts...)
}

func checkSize(n int64, opt DecodeOpt) error {
	if opt.MaxBytes > 0 && n > opt.MaxBytes {
		return issueError("/", CodeTooBig, "max bytes exceeded", map[string]any{"max": opt.MaxBytes}, nil)
	}
	return nil
}

// readValue builds the generic value from src under the token-level guards:
// duplicate keys, JSON nesting derived from MaxDepth and the byte cap.
func readValue(src Source, opt DecodeOpt) (any, error) {
	enforced := eng.WrapWithEnforcement(src, eng.EnforceOptions{
		RejectDuplicates: opt.Strictness.OnDuplicateKey == Error,
		MaxDepth:         opt.tokenDepth(),
		MaxBytes:         opt.MaxBytes,
	})
	v, err := eng.DecodeAnyFromSource(enforced)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return issueError(ie.Path, ie.Code, ie.Message, nil, err)
	}
	return issueError("/", CodeParseError, err.Error(), nil, err)
}
