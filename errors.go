package jarkup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/jarkup/i18n"
)

// Issue codes. Each decode failure is reported with exactly one of these.
const (
	CodeInvalidType  = "invalid_type"  // field present with the wrong JSON type (TypeMismatch)
	CodeRequired     = "required"      // required field absent (MissingRequiredField)
	CodeUnknownTag   = "unknown_tag"   // `type` names no kind of the tagged union (UnknownTag)
	CodeNoMatch      = "no_match"      // no arm of the untagged Component union matched (NoMatchingVariant)
	CodeOutOfRange   = "out_of_range"  // integer outside its enumerated set, e.g. heading level 7 (OutOfRange)
	CodeInvalidEnum  = "invalid_enum"  // string outside a closed enumeration (UnknownEnumString)
	CodeUnknownKey   = "unknown_key"   // key not declared by the kind (UnknownStrict only)
	CodeDuplicateKey = "duplicate_key" // repeated key in one JSON object
	CodeParseError   = "parse_error"   // malformed input text
	CodeTooBig       = "too_big"       // node budget or byte cap exceeded
	CodeTooDeep      = "too_deep"      // component nesting budget exceeded
	CodeTruncated    = "truncated"     // issue collection stopped early
)

// Issue represents a single decode failure.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer (for example: /0/slots/default/2/props/level).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"` // Optional: expected type, offending tag, etc.
	Cause   error  `json:"-"`              // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "max":6, "got":7})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of decode failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. out_of_range at /props/level
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// First returns the first issue with the given code.
func (iss Issues) First(code string) (Issue, bool) {
	for _, it := range iss {
		if it.Code == code {
			return it, true
		}
	}
	return Issue{}, false
}

// issueError builds a one-issue error for failures detected before the
// typed decode, such as malformed text or the byte cap.
func issueError(at, code, hint string, params map[string]any, cause error) Issues {
	if at == "" {
		at = "/"
	}
	return Issues{{Path: at, Code: code, Message: i18n.T(code, nil), Hint: hint, Params: params, Cause: cause}}
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	return ok && iss.Has(code)
}
