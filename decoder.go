package jarkup

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/reoring/jarkup/i18n"
)

// maxIssues bounds issue collection in collect mode.
const maxIssues = 100

// decoder carries the state of one decode pass. Parallel passes each get
// their own decoder and share only the node counter.
type decoder struct {
	opt     DecodeOpt
	issues  Issues
	nodes   *atomic.Int64
	depth   int
	aborted bool
}

func newDecoder(opt DecodeOpt, nodes *atomic.Int64) *decoder {
	if nodes == nil {
		nodes = new(atomic.Int64)
	}
	return &decoder{opt: opt, nodes: nodes}
}

// halted reports whether decoding should stop descending.
func (d *decoder) halted() bool {
	return d.aborted || (d.opt.FailFast && len(d.issues) > 0)
}

func (d *decoder) report(at *path, code, hint string, params map[string]any) {
	if d.aborted {
		return
	}
	if len(d.issues) >= maxIssues {
		d.issues = AppendIssues(d.issues, truncatedIssue())
		d.aborted = true
		return
	}
	d.issues = AppendIssues(d.issues, Issue{Path: at.Pointer(), Code: code, Message: i18n.T(code, nil), Hint: hint, Params: params})
}

func truncatedIssue() Issue {
	return Issue{Path: "/", Code: CodeTruncated, Message: i18n.T(CodeTruncated, nil), Hint: "max issues reached"}
}

// capIssues merges per-root issue lists in order, keeping at most maxIssues
// and marking the result truncated when anything was dropped.
func capIssues(lists []Issues) Issues {
	var all Issues
	truncated := false
merge:
	for _, iss := range lists {
		for _, it := range iss {
			if it.Code == CodeTruncated {
				truncated = true
				continue
			}
			if len(all) == maxIssues {
				truncated = true
				break merge
			}
			all = append(all, it)
		}
	}
	if truncated {
		all = append(all, truncatedIssue())
	}
	return all
}

func (d *decoder) typeMismatch(at *path, expected string, got any) {
	d.report(at, CodeInvalidType, "expected "+expected, map[string]any{"expected": expected, "got": jsonTypeName(got)})
}

// mark and clean bracket a sub-decode: clean reports whether it added no issues.
func (d *decoder) mark() int { return len(d.issues) }

func (d *decoder) clean(mark int) bool { return len(d.issues) == mark && !d.aborted }

// enter accounts for one component. It returns false when a budget is
// exhausted; the caller must not descend and must not call leave.
func (d *decoder) enter(at *path) bool {
	if d.opt.MaxDepth > 0 && d.depth+1 > d.opt.MaxDepth {
		d.report(at, CodeTooDeep, "max depth exceeded", map[string]any{"max": d.opt.MaxDepth})
		d.aborted = true
		return false
	}
	if n := d.nodes.Add(1); d.opt.MaxNodes > 0 && n > int64(d.opt.MaxNodes) {
		d.report(at, CodeTooBig, "max nodes exceeded", map[string]any{"max": d.opt.MaxNodes})
		d.aborted = true
		return false
	}
	d.depth++
	return true
}

func (d *decoder) leave() { d.depth-- }

// object asserts v is a JSON object.
func (d *decoder) object(v any, at *path) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		d.typeMismatch(at, "object", v)
	}
	return m, ok
}

// unknownKeys reports keys outside allowed when the policy is strict. Keys
// are visited in sorted order so issues are deterministic.
func (d *decoder) unknownKeys(obj map[string]any, allowed map[string]struct{}, at *path) {
	if d.opt.UnknownKeys != UnknownStrict {
		return
	}
	var extra []string
	for k := range obj {
		if _, ok := allowed[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		d.report(at.field(k), CodeUnknownKey, "unknown key '"+k+"'", nil)
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		if _, ok := numberOf(v); ok {
			return "number"
		}
		return "unknown"
	}
}

// numberOf normalizes the number representations produced by the JSON
// engine, encoding/json, go-json and yaml.v3.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case interface{ Float64() (float64, error) }: // json.Number from either codec
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}

// integerOf returns v as an integer. isNum reports whether v was a number at
// all, so callers can tell a fractional number from a non-number.
func integerOf(v any) (n int64, isInt, isNum bool) {
	if s, ok := v.(interface{ String() string }); ok {
		if _, num := v.(interface{ Float64() (float64, error) }); num {
			if i, err := strconv.ParseInt(s.String(), 10, 64); err == nil {
				return i, true, true
			}
		}
	}
	switch i := v.(type) {
	case int:
		return int64(i), true, true
	case int64:
		return i, true, true
	case int32:
		return int64(i), true, true
	case uint32:
		return int64(i), true, true
	}
	f, ok := numberOf(v)
	if !ok {
		return 0, false, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, true
	}
	// Integral values beyond int64 saturate so range checks still reject them.
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true, true
	case f < math.MinInt64:
		return math.MinInt64, true, true
	}
	return int64(f), true, true
}

// numberText renders an integer input the way it was written when possible.
func numberText(v any, n int64) string {
	switch x := v.(type) {
	case interface{ String() string }:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatInt(n, 10)
}
