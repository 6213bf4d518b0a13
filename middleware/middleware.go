// Package middleware decodes jarkup documents at HTTP boundaries. The core
// works with net/http; middleware/gin and middleware/echo adapt it to those
// frameworks.
package middleware

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reoring/jarkup"
)

type ctxKeyDocument struct{}

// ContextWithDocument attaches a decoded document to the context.
func ContextWithDocument(ctx context.Context, doc jarkup.Document) context.Context {
	return context.WithValue(ctx, ctxKeyDocument{}, doc)
}

// DocumentFromContext retrieves the document stored by ContextWithDocument.
func DocumentFromContext(ctx context.Context) (jarkup.Document, bool) {
	doc, ok := ctx.Value(ctxKeyDocument{}).(jarkup.Document)
	return doc, ok
}

// DefaultMaxBytes caps request bodies when no DecodeOpt is given.
const DefaultMaxBytes = 8 << 20

// DefaultDecodeOpt returns a recommended default for untrusted HTTP input:
// duplicate keys are errors, undeclared keys are rejected and bodies are
// capped at DefaultMaxBytes.
func DefaultDecodeOpt() jarkup.DecodeOpt {
	return jarkup.DecodeOpt{
		Strictness:  jarkup.Strictness{OnDuplicateKey: jarkup.Error},
		UnknownKeys: jarkup.UnknownStrict,
		MaxBytes:    DefaultMaxBytes,
	}
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []jarkup.Issue) map[string]any {
	return map[string]any{"issues": issues}
}

// Decode reads a document from the request body. Zero opts select
// DefaultDecodeOpt.
func Decode(r *http.Request, opts ...jarkup.DecodeOpt) (jarkup.Document, error) {
	opt := DefaultDecodeOpt()
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return jarkup.ReadDocument(r.Context(), r.Body, opt)
}

// FailurePayload returns the 400 response body for a Decode error.
func FailurePayload(err error) map[string]any {
	if iss, ok := jarkup.AsIssues(err); ok {
		return ErrorPayload(iss)
	}
	return map[string]any{"error": err.Error()}
}

// DocumentBody decodes the request body into a document stored in the
// request context, or answers 400 with the issues.
func DocumentBody(opts ...jarkup.DecodeOpt) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doc, err := Decode(r, opts...)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(FailurePayload(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithDocument(r.Context(), doc)))
		})
	}
}
