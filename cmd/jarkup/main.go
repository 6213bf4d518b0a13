package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/reoring/jarkup"
	"github.com/reoring/jarkup/i18n"
	"github.com/reoring/jarkup/internal/logger"
	"github.com/reoring/jarkup/source/stdjson"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `jarkup CLI

Usage:
  jarkup validate [flags] [file ...]
  jarkup fmt [-indent N] [-assign-ids] [flags] [file]
  jarkup convert -from json|yaml -to json|yaml [flags] [file]
  jarkup schema [-indent N]
  jarkup stats [-json] [flags] [file]

Files default to stdin. Common flags: -from, -strict, -fail-fast, -max-depth,
-max-nodes, -max-bytes, -parallel, -driver, -lang, -log, -no-color.`)
}

// run executes one subcommand and returns the process exit code: 0 on
// success, 1 when the input is invalid, 2 on usage or I/O errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	var cmd func(*env, []string) error
	switch args[0] {
	case "validate":
		cmd = validateCmd
	case "fmt":
		cmd = fmtCmd
	case "convert":
		cmd = convertCmd
	case "schema":
		cmd = schemaCmd
	case "stats":
		cmd = statsCmd
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	e.bind(fs)
	e.fs = fs
	err := cmd(e, args[1:])
	if e.log != nil {
		e.log.Sync()
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errInvalid):
		return 1
	default:
		fmt.Fprintln(stderr, "jarkup:", err)
		return 2
	}
}

// errInvalid marks input that failed to decode; issues are already printed.
var errInvalid = errors.New("invalid document")

type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	fs             *flag.FlagSet
	log            *logger.Logger

	from     string
	strict   bool
	failFast bool
	maxDepth int
	maxNodes int
	maxBytes int64
	parallel int
	driver   string
	lang     string
	logMode  string
	noColor  bool
}

func (e *env) bind(fs *flag.FlagSet) {
	fs.StringVar(&e.from, "from", "json", "input format: json or yaml")
	fs.BoolVar(&e.strict, "strict", false, "reject undeclared keys")
	fs.BoolVar(&e.failFast, "fail-fast", false, "stop at the first issue")
	fs.IntVar(&e.maxDepth, "max-depth", 0, "component nesting limit (0 = default, <0 = off)")
	fs.IntVar(&e.maxNodes, "max-nodes", 0, "component count limit (0 = default, <0 = off)")
	fs.Int64Var(&e.maxBytes, "max-bytes", 0, "input size limit in bytes (0 = off)")
	fs.IntVar(&e.parallel, "parallel", 0, "decode document roots with N workers")
	fs.StringVar(&e.driver, "driver", "go-json", "JSON tokenizer: go-json or encoding/json")
	fs.StringVar(&e.lang, "lang", "en", "issue message language: en or ja")
	fs.StringVar(&e.logMode, "log", "off", "log mode: dev, prod or off")
	fs.BoolVar(&e.noColor, "no-color", false, "disable colored output")
}

// parse parses flags and applies the process-wide settings they select.
func (e *env) parse(args []string) error {
	if err := e.fs.Parse(args); err != nil {
		return err
	}
	l, err := logger.New(e.logMode, e.stderr)
	if err != nil {
		return err
	}
	e.log = l.With("cmd", e.fs.Name())
	if e.noColor {
		color.NoColor = true
	}
	i18n.SetLanguage(e.lang)
	switch e.driver {
	case "go-json", "":
		jarkup.UseDefaultJSONDriver()
	case "encoding/json", "stdjson":
		jarkup.SetJSONDriver(stdjson.Driver{})
	default:
		return fmt.Errorf("unknown driver %q", e.driver)
	}
	if e.from != "json" && e.from != "yaml" {
		return fmt.Errorf("unknown input format %q", e.from)
	}
	return nil
}

func (e *env) opt() jarkup.DecodeOpt {
	opt := jarkup.DecodeOpt{
		MaxDepth:    e.maxDepth,
		MaxNodes:    e.maxNodes,
		MaxBytes:    e.maxBytes,
		FailFast:    e.failFast,
		Parallelism: e.parallel,
	}
	if e.strict {
		opt.UnknownKeys = jarkup.UnknownStrict
	}
	return opt
}

type input struct {
	name string
	data []byte
}

// inputs reads the named files, or stdin when none are given.
func (e *env) inputs() ([]input, error) {
	names := e.fs.Args()
	if len(names) == 0 {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return nil, err
		}
		return []input{{name: "<stdin>", data: data}}, nil
	}
	out := make([]input, 0, len(names))
	for _, n := range names {
		data, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, input{name: n, data: data})
	}
	return out, nil
}

func (e *env) single() (input, error) {
	if e.fs.NArg() > 1 {
		return input{}, fmt.Errorf("%s takes at most one file", e.fs.Name())
	}
	in, err := e.inputs()
	if err != nil {
		return input{}, err
	}
	return in[0], nil
}

// decode decodes one input, guessing YAML from the file extension when
// -from was left at its default.
func (e *env) decode(in input) (jarkup.Document, error) {
	ctx := context.Background()
	format := e.from
	if ext := strings.ToLower(filepath.Ext(in.name)); format == "json" && (ext == ".yaml" || ext == ".yml") {
		format = "yaml"
	}
	e.log.Debug("decoding", "file", in.name, "format", format, "bytes", len(in.data))
	var (
		doc jarkup.Document
		err error
	)
	if format == "yaml" {
		doc, err = jarkup.UnmarshalYAMLDocument(ctx, in.data, e.opt())
	} else {
		doc, err = jarkup.UnmarshalDocument(ctx, in.data, e.opt())
	}
	if err != nil {
		if iss, ok := jarkup.AsIssues(err); ok {
			e.printIssues(in.name, iss)
			e.log.Info("invalid", "file", in.name, "issues", len(iss))
			return nil, errInvalid
		}
		return nil, err
	}
	e.log.Debug("decoded", "file", in.name, "roots", len(doc))
	return doc, nil
}

func (e *env) printIssues(name string, iss jarkup.Issues) {
	red := color.New(color.FgRed, color.Bold)
	faint := color.New(color.Faint)
	for _, it := range iss {
		fmt.Fprintf(e.stderr, "%s: %s %s %s", name, red.Sprint(it.Code), it.Path, it.Message)
		if it.Hint != "" {
			fmt.Fprintf(e.stderr, " %s", faint.Sprint("("+it.Hint+")"))
		}
		fmt.Fprintln(e.stderr)
	}
}

func validateCmd(e *env, args []string) error {
	if err := e.parse(args); err != nil {
		return err
	}
	ins, err := e.inputs()
	if err != nil {
		return err
	}
	ok := color.New(color.FgGreen)
	invalid := false
	for _, in := range ins {
		if _, err := e.decode(in); err != nil {
			if !errors.Is(err, errInvalid) {
				return err
			}
			invalid = true
			continue
		}
		fmt.Fprintf(e.stdout, "%s: %s\n", in.name, ok.Sprint("ok"))
	}
	if invalid {
		return errInvalid
	}
	return nil
}

func fmtCmd(e *env, args []string) error {
	indent := e.fs.Int("indent", 2, "indent width (0 = compact)")
	assignIDs := e.fs.Bool("assign-ids", false, "give every component without an id a random UUID")
	if err := e.parse(args); err != nil {
		return err
	}
	in, err := e.single()
	if err != nil {
		return err
	}
	doc, err := e.decode(in)
	if err != nil {
		return err
	}
	v := jarkup.EncodeDocument(doc)
	if *assignIDs {
		n := assignIDsTo(v)
		e.log.Info("assigned ids", "count", n)
	}
	return writeJSON(e.stdout, v, *indent)
}

// assignIDsTo sets a UUID on every encoded component lacking an id and
// returns how many were set. Components are recognized by the `inline`
// literal, which props objects never carry.
func assignIDsTo(v any) int {
	n := 0
	switch t := v.(type) {
	case map[string]any:
		if _, isNode := t["inline"]; isNode {
			if _, has := t["id"]; !has {
				t["id"] = uuid.NewString()
				n++
			}
		}
		for _, child := range t {
			n += assignIDsTo(child)
		}
	case []any:
		for _, child := range t {
			n += assignIDsTo(child)
		}
	}
	return n
}

func convertCmd(e *env, args []string) error {
	to := e.fs.String("to", "yaml", "output format: json or yaml")
	if err := e.parse(args); err != nil {
		return err
	}
	in, err := e.single()
	if err != nil {
		return err
	}
	doc, err := e.decode(in)
	if err != nil {
		return err
	}
	switch *to {
	case "json":
		return writeJSON(e.stdout, jarkup.EncodeDocument(doc), 2)
	case "yaml":
		out, err := jarkup.MarshalYAMLDocument(doc)
		if err != nil {
			return err
		}
		_, err = e.stdout.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", *to)
	}
}

func schemaCmd(e *env, args []string) error {
	indent := e.fs.Int("indent", 2, "indent width (0 = compact)")
	if err := e.parse(args); err != nil {
		return err
	}
	return writeJSON(e.stdout, jarkup.JSONSchema(), *indent)
}

func statsCmd(e *env, args []string) error {
	asJSON := e.fs.Bool("json", false, "print stats as JSON")
	if err := e.parse(args); err != nil {
		return err
	}
	in, err := e.single()
	if err != nil {
		return err
	}
	doc, err := e.decode(in)
	if err != nil {
		return err
	}
	st := jarkup.DocumentStats(doc)
	if *asJSON {
		byKind := make(map[string]int, len(st.ByKind))
		for k, n := range st.ByKind {
			byKind[string(k)] = n
		}
		return writeJSON(e.stdout, map[string]any{"roots": len(doc), "nodes": st.Nodes, "maxDepth": st.MaxDepth, "byKind": byKind}, 2)
	}
	fmt.Fprintf(e.stdout, "roots\t%d\nnodes\t%d\nmax depth\t%d\n", len(doc), st.Nodes, st.MaxDepth)
	kinds := make([]string, 0, len(st.ByKind))
	for k := range st.ByKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(e.stdout, "  %s\t%d\n", k, st.ByKind[jarkup.Kind(k)])
	}
	return nil
}

func writeJSON(w io.Writer, v any, indent int) error {
	var (
		out []byte
		err error
	)
	if indent > 0 {
		out, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
